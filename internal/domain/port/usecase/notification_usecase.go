package usecase

import (
	"context"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// EmitFunc receives each show or hide event of the registration ticker
type EmitFunc func(entity.NoticeEvent)

// NotificationUseCase produces the "someone just registered" ticker
type NotificationUseCase interface {
	// Run emits show and hide events until ctx is done and returns ctx.Err().
	// When notifications are disabled it emits nothing and waits for ctx.
	Run(ctx context.Context, emit EmitFunc) error
}
