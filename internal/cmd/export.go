package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/markdown"
	"github.com/iw2rmb/scribe/store"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := cobra.Command{
		Use:   "export",
		Short: "Print the stored document as Markdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer func() { _ = e.Close() }()

			state, err := store.RestoreState(cmd.Context(), e.store, e.key, e.options())
			if err != nil {
				return err
			}
			data := markdown.Export(state.Content())

			if output != "" {
				e.logger.Debug("writing markdown", zap.String("path", output))
				return errors.Wrapf(os.WriteFile(output, data, 0o644), "failed to write %q", output)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return errors.Wrap(err, "failed to write result")
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout.")

	return &cmd
}
