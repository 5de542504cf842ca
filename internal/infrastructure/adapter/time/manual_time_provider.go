package time

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
)

// ManualTimeProvider is a TimeProvider whose clock only moves when Advance is called.
// Timers and tickers created from it fire during Advance, in deadline order.
// Tests use it to drive countdown and notification loops without sleeping.
type ManualTimeProvider struct {
	mu       sync.Mutex
	cond     *sync.Cond
	now      time.Time
	location *time.Location
	waiters  []*manualWaiter
}

type manualWaiter struct {
	deadline time.Time
	period   time.Duration // zero for one-shot timers
	ch       chan time.Time
}

// NewManualTimeProvider creates a manual clock set to start.
// The display location is start's location.
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	p := &ManualTimeProvider{
		now:      start,
		location: start.Location(),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Now returns the manual clock's current time
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since returns the manual time elapsed since t
func (p *ManualTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// Until returns the manual time left until t
func (p *ManualTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(t.Sub(p.Now()))
}

// After fires once the clock has been advanced by at least d
func (p *ManualTimeProvider) After(d core.Duration) <-chan time.Time {
	return p.register(d.Std(), 0).ch
}

// NewTicker fires every d of advanced time. Like time.Ticker it drops ticks the reader misses.
func (p *ManualTimeProvider) NewTicker(d core.Duration) core.Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}
	return &manualTicker{provider: p, waiter: p.register(d.Std(), d.Std())}
}

// WithTimeout returns a context canceled once the clock passes timeout.
// context.Cause reports context.DeadlineExceeded when the timeout fired.
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	fired := p.After(timeout)
	go func() {
		select {
		case <-fired:
			cancel(context.DeadlineExceeded)
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(context.Canceled) }
}

// Location returns the display zone
func (p *ManualTimeProvider) Location() *time.Location {
	return p.location
}

// Set moves the clock to t without firing timers; use it only before any timer exists
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t
}

// Advance moves the clock forward by d and fires every timer and ticker that came due
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.now = p.now.Add(d)

	for {
		due := p.nextDue()
		if due == nil {
			return
		}
		select {
		case due.ch <- due.deadline:
		default:
		}
		if due.period > 0 {
			due.deadline = due.deadline.Add(due.period)
			continue
		}
		p.remove(due)
	}
}

// BlockUntil waits until at least n timers or tickers are pending.
// Tests call it before Advance so the loop under test has armed its timers.
func (p *ManualTimeProvider) BlockUntil(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.waiters) < n {
		p.cond.Wait()
	}
}

// Pending returns the number of timers and tickers not yet fired or stopped
func (p *ManualTimeProvider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.waiters)
}

func (p *ManualTimeProvider) register(d, period time.Duration) *manualWaiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	w := &manualWaiter{
		deadline: p.now.Add(d),
		period:   period,
		ch:       make(chan time.Time, 1),
	}
	p.waiters = append(p.waiters, w)
	p.cond.Broadcast()
	return w
}

// nextDue returns the earliest waiter whose deadline is not after now
func (p *ManualTimeProvider) nextDue() *manualWaiter {
	sort.SliceStable(p.waiters, func(i, j int) bool {
		return p.waiters[i].deadline.Before(p.waiters[j].deadline)
	})
	if len(p.waiters) == 0 || p.waiters[0].deadline.After(p.now) {
		return nil
	}
	return p.waiters[0]
}

func (p *ManualTimeProvider) remove(w *manualWaiter) {
	for i, candidate := range p.waiters {
		if candidate == w {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			p.cond.Broadcast()
			return
		}
	}
}

type manualTicker struct {
	provider *ManualTimeProvider
	waiter   *manualWaiter
}

func (t *manualTicker) C() <-chan time.Time { return t.waiter.ch }

func (t *manualTicker) Stop() {
	t.provider.mu.Lock()
	defer t.provider.mu.Unlock()
	t.provider.remove(t.waiter)
}
