package dto

import (
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

// CountdownResponse is one countdown value
type CountdownResponse struct {
	Target    string `json:"target"`
	Days      int64  `json:"days"`
	Hours     int64  `json:"hours"`
	Minutes   int64  `json:"minutes"`
	Seconds   int64  `json:"seconds"`
	Total     int64  `json:"total"`
	IsExpired bool   `json:"isExpired"`
	Label     string `json:"label"`
}

// NewCountdownResponse maps a countdown to the API shape
func NewCountdownResponse(cd entity.Countdown) CountdownResponse {
	return CountdownResponse{
		Target:    cd.Target.UTC().Format(time.RFC3339),
		Days:      cd.Days,
		Hours:     cd.Hours,
		Minutes:   cd.Minutes,
		Seconds:   cd.Seconds,
		Total:     cd.Total,
		IsExpired: cd.IsExpired,
		Label:     cd.Label(),
	}
}
