package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/store"
)

func editCmd() *cobra.Command {
	var (
		readOnly bool
		noWrap   bool
	)

	cmd := cobra.Command{
		Use:   "edit",
		Short: "Open the stored document in the terminal editor.",
		Long: `Open the stored document in the terminal editor.

Typing "# " at the start of a block makes it a heading. "* ", "** " and
"*** " toggle bold, red and underline for the text that follows.
The document is saved on ctrl+s and on exit (esc or ctrl+q).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return err
			}
			defer func() { _ = e.Close() }()

			state, err := store.RestoreState(cmd.Context(), e.store, e.key, e.options())
			var warn *store.RestoreWarning
			switch {
			case errors.As(err, &warn):
				e.logger.Warn("starting with an empty document", zap.Error(warn))
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), warn.Error())
			case err != nil:
				return err
			}

			wrap := editor.WrapWord
			if noWrap {
				wrap = editor.WrapNone
			}

			ed := editor.New(editor.Config{
				HistoryLimit:   e.cfg.Editor.HistoryLimit,
				Placeholder:    e.cfg.Editor.Placeholder,
				ShowBlockTypes: e.cfg.Editor.ShowBlockTypes,
				WrapMode:       wrap,
				Style:          editor.DefaultStyle(),
				ReadOnly:       readOnly,
				Clipboard:      editor.SystemClipboard{},
				Logger:         e.logger,
			}).SetState(state)

			m := newApp(ed, e.store, e.key, e.logger)
			if _, err := newProgram(cmd, m).Run(); err != nil {
				return errors.Wrap(err, "editor failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Open the document without allowing edits.")
	cmd.Flags().BoolVar(&noWrap, "no-wrap", false, "Do not soft-wrap long blocks.")

	return &cmd
}
