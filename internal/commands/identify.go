package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/paypalbean/internal/importer"
)

func newIdentifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <file|dir>...",
		Short: "List the files that are PayPal exports for the configured account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imp, err := a.importer()
			if err != nil {
				return err
			}
			files, err := importer.Expand(args)
			if err != nil {
				return err
			}
			found := importer.Identified(files, imp)
			a.log.Debug().Int("scanned", len(files)).Int("identified", len(found)).Msg("identify done")
			for _, f := range found {
				fmt.Fprintln(cmd.OutOrStdout(), f.Path)
			}
			return nil
		},
	}
}
