package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
	"github.com/amirhossein-jamali/webinar-hub/internal/domain/usecase/countdown"
)

// Default weekly slot used when --target is not given
const (
	defaultSeriesWeekday  = "thursday"
	defaultSeriesHour     = 14
	defaultSeriesTimezone = "America/New_York"
)

type countdownOptions struct {
	target   string
	tz       string
	weekday  string
	hour     int
	once     bool
	interval time.Duration
}

func newCountdownCommand(a *app) *cobra.Command {
	opts := &countdownOptions{}

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show the time left until a webinar starts",
		Long: `Show a live countdown until --target, redrawn every tick until the target passes
or Ctrl+C is pressed. Without --target the next weekly series slot is used.

Examples:
  webinarctl countdown --target 2025-01-23T14:00:00-05:00
  webinarctl countdown --weekday tuesday --hour 18 --tz Europe/London
  webinarctl countdown --once`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCountdown(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "instant to count down to")
	cmd.Flags().StringVar(&opts.tz, "tz", defaultSeriesTimezone, "zone for zone-less targets and the weekly slot")
	cmd.Flags().StringVar(&opts.weekday, "weekday", defaultSeriesWeekday, "weekday of the series slot")
	cmd.Flags().IntVar(&opts.hour, "hour", defaultSeriesHour, "hour of the series slot")
	cmd.Flags().BoolVar(&opts.once, "once", false, "print a single snapshot and exit")
	cmd.Flags().DurationVar(&opts.interval, "interval", time.Second, "redraw interval")

	return cmd
}

func (a *app) runCountdown(cmd *cobra.Command, opts *countdownOptions) error {
	loc, err := entity.LoadTimezone(opts.tz)
	if err != nil {
		return err
	}

	target, err := a.countdownTarget(opts, loc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", headingStyle.Render("Starts"), entity.FormatDateTimeIn(target, loc))

	service := countdown.NewService(a.timeProvider, a.logger, coreport.Duration(opts.interval))

	if opts.once {
		fmt.Fprintln(out, renderCountdownBoxes(service.Snapshot(target)))
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	err = service.Run(ctx, target, func(cd entity.Countdown) {
		// \r plus clear-to-end-of-line redraws the same terminal row.
		fmt.Fprint(out, "\r\033[K"+renderCountdownLine(cd))
		if cd.IsExpired {
			cancel()
		}
	})
	fmt.Fprintln(out)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) countdownTarget(opts *countdownOptions, loc *time.Location) (time.Time, error) {
	if opts.target != "" {
		return entity.ParseInstantIn(opts.target, loc)
	}

	weekday, err := entity.ParseWeekday(opts.weekday)
	if err != nil {
		return time.Time{}, err
	}
	if opts.hour < 0 || opts.hour > 23 {
		return time.Time{}, fmt.Errorf("hour must be between 0 and 23, got %d", opts.hour)
	}
	return entity.NextWeeklySlot(a.timeProvider.Now(), weekday, opts.hour, 0, loc), nil
}
