package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/webinar-hub/internal/domain/error"
)

const allProviders = "all"

type linkOptions struct {
	title       string
	description string
	location    string
	start       string
	end         string
	duration    int
	provider    string
	tz          string
}

func newLinkCommand(a *app) *cobra.Command {
	opts := &linkOptions{}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build an add-to-calendar link",
		Long: `Build a Google, Outlook or Apple calendar link for an event.
--end wins over --duration. Use --provider all to print every provider.

Examples:
  webinarctl link --title "React Patterns" --start 2025-01-23T19:00:00Z --provider google
  webinarctl link --title "React Patterns" --start "2025-01-23 14:00" --tz America/New_York --duration 90 --provider all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLink(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "event title")
	cmd.Flags().StringVar(&opts.description, "description", "", "event description")
	cmd.Flags().StringVar(&opts.location, "location", entity.DefaultWebinarLocation, "event location")
	cmd.Flags().StringVar(&opts.start, "start", "", "start instant")
	cmd.Flags().StringVar(&opts.end, "end", "", "end instant")
	cmd.Flags().IntVar(&opts.duration, "duration", 60, "duration in minutes when --end is not set")
	cmd.Flags().StringVarP(&opts.provider, "provider", "p", string(entity.ProviderGoogle), "google, outlook, apple or all")
	cmd.Flags().StringVar(&opts.tz, "tz", "", "zone for zone-less instants (default local)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *app) runLink(cmd *cobra.Command, opts *linkOptions) error {
	loc := a.timeProvider.Location()
	if opts.tz != "" {
		var err error
		if loc, err = entity.LoadTimezone(opts.tz); err != nil {
			return err
		}
	}

	event, err := opts.event(loc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	provider := strings.ToLower(opts.provider)

	if provider == allProviders {
		links := entity.BuildCalendarLinks(event)
		for _, p := range entity.CalendarProviders() {
			fmt.Fprintf(out, "%s\t%s\n", p, links[p])
		}
		return nil
	}

	link := entity.BuildCalendarLink(event, entity.CalendarProvider(provider))
	if link == "" {
		return fmt.Errorf("%w: %q", domainerr.ErrUnsupportedProvider, opts.provider)
	}
	fmt.Fprintln(out, link)
	return nil
}

func (o *linkOptions) event(loc *time.Location) (entity.CalendarEvent, error) {
	start, err := entity.ParseInstantIn(o.start, loc)
	if err != nil {
		return entity.CalendarEvent{}, err
	}

	event := entity.NewCalendarEvent(o.title, o.description, o.location, start, o.duration)
	if o.end != "" {
		end, err := entity.ParseInstantIn(o.end, loc)
		if err != nil {
			return entity.CalendarEvent{}, err
		}
		event.End = end
	} else if o.duration <= 0 {
		return entity.CalendarEvent{}, fmt.Errorf("%w: duration must be positive", domainerr.ErrInvalidDuration)
	}
	return event, nil
}
