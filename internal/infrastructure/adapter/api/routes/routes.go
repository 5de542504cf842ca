package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	utilityHandler *handler.UtilityHandler,
	countdownHandler *handler.CountdownHandler,
	scheduleHandler *handler.ScheduleHandler,
	notificationHandler *handler.NotificationHandler,
) {
	router.GET("/health", utilityHandler.Health)

	api := router.Group("/api")

	format := api.Group("/format")
	{
		format.GET("/datetime", utilityHandler.FormatDateTime)
		format.GET("/relative", utilityHandler.FormatRelative)
		format.GET("/duration", utilityHandler.FormatDuration)
		format.GET("/number", utilityHandler.FormatNumber)
	}

	api.GET("/timezones", utilityHandler.ListTimezones)
	api.POST("/calendar-links", utilityHandler.CalendarLink)

	countdown := api.Group("/countdown")
	{
		countdown.GET("", countdownHandler.Snapshot)
		countdown.GET("/stream", countdownHandler.Stream)
	}

	webinars := api.Group("/webinars")
	{
		webinars.GET("/upcoming", scheduleHandler.Upcoming)
		webinars.GET("/past", scheduleHandler.Past)
		webinars.GET("/next", scheduleHandler.Next)
		webinars.GET("/:id", scheduleHandler.Get)
		webinars.GET("/:id/calendar/:provider", scheduleHandler.CalendarLink)
	}

	api.GET("/registrations/recent/stream", notificationHandler.Stream)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Order matters: ids first so every later log line carries one.
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
