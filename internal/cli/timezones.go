package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/entity"
)

func newTimezonesCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timezones",
		Short: "List the supported timezones",
		Long:  `List the timezone catalog. The zone detected for this machine is marked with *.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printTimezones(cmd, entity.DetectTimezone())
		},
	}
}

func printTimezones(cmd *cobra.Command, detected string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tZONE\tLABEL")

	for _, tz := range entity.ListTimezones() {
		mark := " "
		if tz.Value == detected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", mark, tz.Value, tz.Label)
	}

	if _, ok := entity.LookupTimezone(detected); !ok {
		fmt.Fprintf(w, "*\t%s\t%s\n", detected, "(detected, not in catalog)")
	}
	return w.Flush()
}
