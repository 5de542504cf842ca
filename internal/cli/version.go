package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags at build time
var (
	version = "dev"
	commit  = "dev"
	date    = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version information for webinarctl`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "webinarctl version %s\n", version)
			fmt.Fprintf(out, "Git commit: %s\n", commit)
			fmt.Fprintf(out, "Built on: %s\n", date)
		},
	}
}
