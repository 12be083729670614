package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/scribe/document"
	"github.com/iw2rmb/scribe/markdown"
	"github.com/iw2rmb/scribe/store"
)

func importCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored document with a Markdown file.",
		Long:  "Replace the stored document with a Markdown file. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer func() { _ = e.Close() }()

			content, err := markdown.Import(data, document.NewKey)
			if err != nil {
				return errors.Wrap(err, "failed to parse markdown")
			}
			state := document.NewState(content, e.options())
			if err := store.SaveState(cmd.Context(), e.store, e.key, state); err != nil {
				return err
			}

			e.logger.Info("imported document", zap.String("key", e.key), zap.Int("blocks", content.Len()))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d blocks into %q\n", content.Len(), e.key)
			return errors.WithStack(err)
		},
	}

	return &cmd
}

func readSource(stdin io.Reader, fileName string) ([]byte, error) {
	if fileName == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "failed to read from stdin")
	}
	data, err := os.ReadFile(fileName)
	return data, errors.Wrapf(err, "failed to read file %q", fileName)
}
