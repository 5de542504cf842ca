package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

type formatOptions struct {
	at string
	tz string
}

func newFormatCommand(a *app) *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render an instant the way the site displays it",
		Long: `Render an instant as a long date, a 12-hour time and a relative time.

Examples:
  webinarctl format --at 2025-01-20T09:30:00Z
  webinarctl format --at 2025-01-20T09:30:00Z --tz Asia/Tokyo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFormat(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.at, "at", "", "instant to format")
	cmd.Flags().StringVar(&opts.tz, "tz", "", "display zone (default local)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func (a *app) runFormat(cmd *cobra.Command, opts *formatOptions) error {
	loc := a.timeProvider.Location()
	if opts.tz != "" {
		var err error
		if loc, err = entity.LoadTimezone(opts.tz); err != nil {
			return err
		}
	}

	at, err := entity.ParseInstantIn(opts.at, loc)
	if err != nil {
		return err
	}

	a.logger.Debug("Formatting instant", map[string]any{"at": at, "timezone": loc.String()})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Date\t%s\n", entity.FormatDateIn(at, loc))
	fmt.Fprintf(w, "Time\t%s\n", entity.FormatTimeIn(at, loc))
	fmt.Fprintf(w, "Relative\t%s\n", entity.RelativeTimeIn(at, a.timeProvider.Now(), loc))
	fmt.Fprintf(w, "Timezone\t%s\n", loc.String())
	return w.Flush()
}
