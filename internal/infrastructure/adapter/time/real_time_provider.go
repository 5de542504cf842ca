package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a real time provider that displays in the process-local zone
func NewRealTimeProvider() core.TimeProvider {
	return NewRealTimeProviderIn(time.Local)
}

// NewRealTimeProviderIn creates a real time provider that displays in loc
func NewRealTimeProviderIn(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.Local
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Until returns the duration until t
func (p *RealTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}

// After waits for d and then sends the current time once
func (p *RealTimeProvider) After(d core.Duration) <-chan time.Time {
	return time.After(d.Std())
}

// NewTicker returns a ticker backed by time.Ticker
func (p *RealTimeProvider) NewTicker(d core.Duration) core.Ticker {
	return &realTicker{ticker: time.NewTicker(d.Std())}
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Location returns the display zone
func (p *RealTimeProvider) Location() *time.Location {
	return p.location
}

type realTicker struct {
	ticker *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.ticker.C }

func (t *realTicker) Stop() { t.ticker.Stop() }
