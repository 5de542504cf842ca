package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
)

// NotificationHandler streams the recent registration ticker
type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              coreport.Logger
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger coreport.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// Stream handles GET /api/registrations/recent/stream
func (h *NotificationHandler) Stream(c *gin.Context) {
	stream(c, h.logger, "registration",
		func(ctx context.Context, send func(entity.NoticeEvent)) error {
			return h.notificationUseCase.Run(ctx, func(e entity.NoticeEvent) { send(e) })
		},
		func(e entity.NoticeEvent) any { return dto.NewNoticeEventResponse(e) },
	)
}
