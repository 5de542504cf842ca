package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/usecase/countdown"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/usecase/notification"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/usecase/schedule"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLoggerWithOptions(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		Production: cfg.Environment == config.Production,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	loc, err := entity.LoadTimezone(cfg.Site.Timezone)
	if err != nil {
		appLogger.Error("Invalid site timezone", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	tp := timeProvider.NewRealTimeProviderIn(loc)

	router, err := newRouter(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to build application", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Cancelled on shutdown so open event streams return.
	baseCtx, stopStreams := context.WithCancel(context.Background())
	server.BaseContext = func(net.Listener) context.Context { return baseCtx }

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"timezone": loc.String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := tp.WithTimeout(context.Background(), coreport.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	stopStreams()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newRouter builds the repository, use cases and handlers and mounts them on a gin engine
func newRouter(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*gin.Engine, error) {
	slot, err := weeklySlot(cfg.Site.Series, tp.Location())
	if err != nil {
		return nil, err
	}

	webinarRepo, err := repository.NewConfigWebinarRepository(cfg.Webinars, slot, tp, appLogger)
	if err != nil {
		return nil, err
	}

	scheduleService := schedule.NewService(webinarRepo, tp, appLogger, cfg.Site.WebinarLocation)
	countdownService := countdown.NewService(tp, appLogger, coreport.Duration(cfg.Countdown.TickInterval()))
	notificationFeed := notification.NewFeed(notificationSettings(cfg.Notifications), tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router,
		handler.NewUtilityHandler(tp, appLogger, cfg.Site.WebinarLocation),
		handler.NewCountdownHandler(countdownService, scheduleService, tp, appLogger),
		handler.NewScheduleHandler(scheduleService, tp, appLogger),
		handler.NewNotificationHandler(notificationFeed, appLogger),
	)
	return router, nil
}

func weeklySlot(series config.SeriesConfig, loc *time.Location) (entity.WeeklySlot, error) {
	weekday, err := entity.ParseWeekday(series.Weekday)
	if err != nil {
		return entity.WeeklySlot{}, fmt.Errorf("site.series.weekday: %w", err)
	}
	return entity.WeeklySlot{
		Weekday:  weekday,
		Hour:     series.Hour,
		Minute:   series.Minute,
		Location: loc,
	}, nil
}

func notificationSettings(n config.NotificationsConfig) notification.Settings {
	return notification.Settings{
		Enabled:      n.Enabled,
		InitialDelay: coreport.Duration(time.Duration(n.InitialDelayMs) * time.Millisecond),
		Interval:     coreport.Duration(time.Duration(n.IntervalMs) * time.Millisecond),
		Visible:      coreport.Duration(time.Duration(n.VisibleMs) * time.Millisecond),
		Names:        n.Names,
		Locations:    n.Locations,
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Site.Timezone == "" {
		missingConfigs = append(missingConfigs, "site.timezone")
	}
	if cfg.Site.Series.Weekday == "" {
		missingConfigs = append(missingConfigs, "site.series.weekday")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Site.Series.Hour < 0 || cfg.Site.Series.Hour > 23 {
		return fmt.Errorf("site.series.hour must be between 0 and 23, got %d", cfg.Site.Series.Hour)
	}
	if cfg.Site.Series.Minute < 0 || cfg.Site.Series.Minute > 59 {
		return fmt.Errorf("site.series.minute must be between 0 and 59, got %d", cfg.Site.Series.Minute)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Logger.Level == "debug" {
			warnings = append(warnings, "logger.level is debug in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
