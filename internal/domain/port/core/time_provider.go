package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Ticker delivers ticks on C until Stop is called
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TimeProvider abstracts time operations for the domain.
// Every "now" the domain needs is read through it so loops and formatters can be driven by a fixed clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Until(t time.Time) Duration
	// After fires once after d
	After(d Duration) <-chan time.Time
	// NewTicker fires every d; callers must Stop it
	NewTicker(d Duration) Ticker
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
	// Location is the zone used for local display
	Location() *time.Location
}
