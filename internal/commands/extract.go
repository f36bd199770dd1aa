package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/paypalbean/internal/ledger"
	"github.com/cleared-dev/paypalbean/internal/model"
)

type extractOptions struct {
	output   string
	existing string
	check    bool
}

func newExtractCommand(a *app) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Convert a PayPal export to beancount entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&opts.existing, "existing", "", "ledger whose uuids mark extracted entries as duplicates")
	cmd.Flags().BoolVar(&opts.check, "check", false, "warn about transactions that do not balance")

	return cmd
}

func runExtract(cmd *cobra.Command, a *app, path string, opts extractOptions) error {
	imp, err := a.importer()
	if err != nil {
		return err
	}

	var existing map[string]bool
	if opts.existing != "" {
		existing, err = ledger.LoadUUIDs(opts.existing)
		if err != nil {
			return err
		}
	}

	entries, err := imp.Extract(path, existing)
	if err != nil {
		return err
	}

	if opts.check {
		for _, e := range ledger.ValidateEntries(entries) {
			a.log.Warn().
				Str("date", e.Date.String()).
				Str("payee", e.Payee).
				Int("line", e.Line).
				Str("currency", e.Currency).
				Str("residual", e.Residual.String()).
				Msg("transaction does not balance")
		}
	}

	if opts.output == "" {
		return ledger.Write(cmd.OutOrStdout(), entries)
	}
	if err := writeFile(opts.output, entries); err != nil {
		return err
	}
	a.log.Info().Str("file", opts.output).Int("entries", len(entries)).Msg("extracted")
	return nil
}

func writeFile(path string, entries []model.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ledger.Write(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
