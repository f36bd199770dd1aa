package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/paypalbean/internal/importer"
	"github.com/cleared-dev/paypalbean/internal/importlog"
	"github.com/cleared-dev/paypalbean/internal/paypal"
)

func newArchiveCommand(a *app) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "archive <file>",
		Short: "Move an imported export into the documents tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(cmd, a, args[0], dest)
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "root of the documents tree (required)")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func runArchive(cmd *cobra.Command, a *app, src, dest string) error {
	imp, err := a.importer()
	if err != nil {
		return err
	}
	if !imp.Identify(src) {
		return fmt.Errorf("%s is not a PayPal export for %s", src, imp.Account())
	}

	entries, err := imp.Extract(src, nil)
	if err != nil {
		return err
	}
	last, ok := paypal.LatestDate(entries)
	if !ok {
		return fmt.Errorf("no entries in %s", src)
	}

	dst, err := importer.Archive(src, dest, imp.Account(), last)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(dest, dst)
	if err != nil {
		rel = dst
	}
	rec := importlog.Record{
		ArchivedAt: time.Now(),
		Account:    imp.Account(),
		Source:     src,
		Archived:   rel,
		Entries:    len(entries),
		LastDate:   last,
	}
	if err := importlog.Append(dest, []importlog.Record{rec}); err != nil {
		return err
	}

	a.log.Info().Str("from", src).Str("to", dst).Int("entries", len(entries)).Msg("archived")
	fmt.Fprintln(cmd.OutOrStdout(), dst)
	return nil
}
