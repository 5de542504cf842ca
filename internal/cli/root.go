// Package cli implements the webinarctl command line
package cli

import (
	"github.com/spf13/cobra"

	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/logger"
)

// app holds what every subcommand shares. logger is set by the root pre-run hook.
type app struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	logLevel     string
}

// NewRootCommand builds the webinarctl command tree around timeProvider
func NewRootCommand(timeProvider coreport.TimeProvider) *cobra.Command {
	a := &app{
		timeProvider: timeProvider,
		logger:       logger.NewNoopLogger(),
	}

	root := &cobra.Command{
		Use:   "webinarctl",
		Short: "Countdowns, calendar links and time formatting for webinars",
		Long: `webinarctl runs the webinar hub's time utilities from a terminal.

Examples:
  webinarctl countdown --target 2025-01-23T14:00:00-05:00
  webinarctl link --title "React Patterns" --start 2025-01-23T19:00:00Z --provider google
  webinarctl format --at 2025-01-20T09:30:00Z --tz Asia/Tokyo
  webinarctl timezones`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := logger.NewZapLoggerWithOptions(logger.Options{
				Level:  a.logLevel,
				Format: "console",
				Output: []string{"stderr"},
			})
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newCountdownCommand(a),
		newLinkCommand(a),
		newTimezonesCommand(a),
		newFormatCommand(a),
		newVersionCommand(),
	)

	return root
}
