package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/scribe"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scribe version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), scribe.VersionString())
			return err
		},
	}
}
