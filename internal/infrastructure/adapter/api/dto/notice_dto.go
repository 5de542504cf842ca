package dto

import (
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// NoticeEventResponse is one registration ticker event
type NoticeEventResponse struct {
	Type     string `json:"type"`
	Visible  bool   `json:"visible"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	TimeAgo  string `json:"timeAgo"`
	Message  string `json:"message"`
	At       string `json:"at"`
}

// NewNoticeEventResponse maps a ticker event to the API shape
func NewNoticeEventResponse(e entity.NoticeEvent) NoticeEventResponse {
	return NoticeEventResponse{
		Type:     string(e.Type),
		Visible:  e.Visible(),
		ID:       e.Notice.ID,
		Name:     e.Notice.Name,
		Location: e.Notice.Location,
		TimeAgo:  e.Notice.TimeAgo(),
		Message:  e.Notice.Message(),
		At:       e.At.UTC().Format(time.RFC3339),
	}
}
