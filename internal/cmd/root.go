// Package cmd implements the scribe command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	storageKey string
	logVerbose bool
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "scribe",
		Short:         "A rich text editor for the terminal",
		Long:          "scribe edits a block-structured rich text document with Markdown-like shortcuts and keeps it in a local store.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pflags := cmd.PersistentFlags()

	pflags.StringVar(&configPath, "config", defaultConfigPath(), "Path to the configuration file.")
	pflags.StringVar(&storageKey, "key", "", "Storage key of the document. Overrides storage.key from the configuration.")
	pflags.BoolVar(&logVerbose, "log-verbose", false, "Enable debug logging.")

	cmd.AddCommand(editCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(dumpCmd())
	cmd.AddCommand(versionCmd())

	return &cmd
}
