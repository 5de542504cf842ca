package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
)

var start = time.Date(2025, 1, 20, 9, 30, 0, 0, time.UTC)

func received(ch <-chan time.Time) (time.Time, bool) {
	select {
	case t := <-ch:
		return t, true
	default:
		return time.Time{}, false
	}
}

func TestManualTimeProvider_Now(t *testing.T) {
	clock := NewManualTimeProvider(start)

	assert.Equal(t, start, clock.Now())
	assert.Equal(t, time.UTC, clock.Location())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())
	assert.Equal(t, core.Duration(90*time.Second), clock.Since(start))
	assert.Equal(t, core.Duration(30*time.Second), clock.Until(start.Add(2*time.Minute)))
}

func TestManualTimeProvider_After(t *testing.T) {
	clock := NewManualTimeProvider(start)
	ch := clock.After(3 * core.Second)
	require.Equal(t, 1, clock.Pending())

	clock.Advance(2 * time.Second)
	_, ok := received(ch)
	assert.False(t, ok)

	clock.Advance(time.Second)
	at, ok := received(ch)
	assert.True(t, ok)
	assert.Equal(t, start.Add(3*time.Second), at)
	assert.Equal(t, 0, clock.Pending())
}

func TestManualTimeProvider_Ticker(t *testing.T) {
	clock := NewManualTimeProvider(start)
	ticker := clock.NewTicker(core.Second)

	clock.Advance(time.Second)
	at, ok := received(ticker.C())
	require.True(t, ok)
	assert.Equal(t, start.Add(time.Second), at)

	// Missed ticks are dropped, the first one is kept.
	clock.Advance(3 * time.Second)
	at, ok = received(ticker.C())
	require.True(t, ok)
	assert.Equal(t, start.Add(2*time.Second), at)
	_, ok = received(ticker.C())
	assert.False(t, ok)

	ticker.Stop()
	assert.Equal(t, 0, clock.Pending())
	clock.Advance(time.Second)
	_, ok = received(ticker.C())
	assert.False(t, ok)
}

func TestManualTimeProvider_BlockUntil(t *testing.T) {
	clock := NewManualTimeProvider(start)
	done := make(chan struct{})

	go func() {
		clock.BlockUntil(2)
		close(done)
	}()

	clock.After(core.Second)
	clock.NewTicker(core.Minute)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BlockUntil did not return after two timers were armed")
	}
}

func TestManualTimeProvider_WithTimeout(t *testing.T) {
	clock := NewManualTimeProvider(start)
	ctx, cancel := clock.WithTimeout(context.Background(), 5*core.Second)
	defer cancel()

	clock.Advance(4 * time.Second)
	assert.NoError(t, ctx.Err())

	clock.Advance(time.Second)
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled after the timeout")
	}
	assert.ErrorIs(t, context.Cause(ctx), context.DeadlineExceeded)
}

func TestRealTimeProvider(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	p := NewRealTimeProviderIn(tokyo)
	assert.Equal(t, tokyo, p.Location())
	assert.Equal(t, time.Local, NewRealTimeProvider().Location())

	before := time.Now()
	assert.False(t, p.Now().Before(before))

	ticker := p.NewTicker(core.Millisecond)
	defer ticker.Stop()
	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("ticker did not fire")
	}

	select {
	case <-p.After(core.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("After did not fire")
	}

	ctx, cancel := p.WithTimeout(context.Background(), core.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
