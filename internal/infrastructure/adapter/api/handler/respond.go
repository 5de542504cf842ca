package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/dto"
)

type logFielder interface {
	LogFields() map[string]any
}

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage hides internal details from clients
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrWebinarNotFound):
		return "Webinar not found"
	case errors.Is(err, domainerr.ErrNoUpcomingWebinar):
		return "No upcoming webinar"
	case domainerr.IsClientError(err):
		return err.Error()
	default:
		return "Internal server error"
	}
}

// respondError logs err and writes the standard error body
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := statusCode(err)

	fields := map[string]any{
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage(err),
	})
}

// locationParam reads the optional tz query parameter, falling back to def
func locationParam(c *gin.Context, def *time.Location) (*time.Location, error) {
	name := c.Query("tz")
	if name == "" {
		return def, nil
	}
	return entity.LoadTimezone(name)
}
