package config

import (
	"time"

	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/model"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Logger        LoggerConfig        `mapstructure:"logger"`
	Site          SiteConfig          `mapstructure:"site"`
	Countdown     CountdownConfig     `mapstructure:"countdown"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Webinars      []model.Webinar     `mapstructure:"webinars"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string   `mapstructure:"level"`
	Format string   `mapstructure:"format"`
	Output []string `mapstructure:"output"`
}

// SiteConfig describes where and when the webinar series runs
type SiteConfig struct {
	Timezone        string       `mapstructure:"timezone"`
	WebinarLocation string       `mapstructure:"webinarLocation"`
	Series          SeriesConfig `mapstructure:"series"`
}

// SeriesConfig is the weekly slot used by webinars without a fixed start
type SeriesConfig struct {
	Weekday string `mapstructure:"weekday"`
	Hour    int    `mapstructure:"hour"`
	Minute  int    `mapstructure:"minute"`
}

// CountdownConfig contains live countdown settings
type CountdownConfig struct {
	TickIntervalMs int64 `mapstructure:"tickIntervalMs"`
}

// TickInterval returns the configured tick as a duration
func (c CountdownConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// NotificationsConfig contains registration ticker settings
type NotificationsConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	InitialDelayMs int64    `mapstructure:"initialDelayMs"`
	IntervalMs     int64    `mapstructure:"intervalMs"`
	VisibleMs      int64    `mapstructure:"visibleMs"`
	Names          []string `mapstructure:"names"`
	Locations      []string `mapstructure:"locations"`
}
