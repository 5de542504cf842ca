package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}
