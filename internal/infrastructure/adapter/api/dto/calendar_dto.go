package dto

// CalendarLinkRequest describes an ad-hoc event to export.
// End wins over DurationMinutes; with neither the event lasts one hour.
type CalendarLinkRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Start           string `json:"start" binding:"required"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes" binding:"omitempty,min=1"`
	Provider        string `json:"provider" binding:"required"`
}

// CalendarLinkResponse is a link for one provider
type CalendarLinkResponse struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}
