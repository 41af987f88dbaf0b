package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/team6/drone/internal/buildinfo"
)

// Command creates a new cobra.Command to print build information.
func Command(info *buildinfo.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "system id: %s\n", info.GetSystemID())
			return nil
		},
	}
}
