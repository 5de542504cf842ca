package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
)

// stream runs produce and writes every value it sends as a server-sent event named event.
// It returns when produce returns or the client goes away. Each send blocks until the
// value has been written, so events are flushed in order.
func stream[T any](
	c *gin.Context,
	logger coreport.Logger,
	event string,
	produce func(ctx context.Context, send func(T)) error,
	render func(T) any,
) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Streams outlive the server write timeout.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	updates := make(chan T)
	done := make(chan error, 1)
	go func() {
		done <- produce(ctx, func(v T) {
			select {
			case updates <- v:
			case <-ctx.Done():
			}
		})
	}()

	sent := 0
	finish := func(err error) {
		fields := map[string]any{"event": event, "sent": sent}
		if err != nil && !errors.Is(err, context.Canceled) {
			fields["error"] = err.Error()
			logger.Warn("Event stream ended with error", fields)
			return
		}
		logger.Debug("Event stream closed", fields)
	}

	for {
		select {
		case v := <-updates:
			c.SSEvent(event, render(v))
			c.Writer.Flush()
			sent++
		case err := <-done:
			finish(err)
			return
		case <-ctx.Done():
			finish(<-done)
			return
		}
	}
}
