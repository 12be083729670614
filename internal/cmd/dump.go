package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/store"
)

func dumpCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "dump",
		Short: "Print the stored document in its raw JSON form.",
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
			data, err := document.MarshalRaw(state.Content())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return errors.Wrap(err, "failed to write result")
		},
	}

	return &cmd
}
