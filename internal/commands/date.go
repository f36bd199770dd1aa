package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "date <file>",
		Short: "Print the date of the latest entry in an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imp, err := a.importer()
			if err != nil {
				return err
			}
			d, ok := imp.Date(args[0])
			if !ok {
				return fmt.Errorf("no entries in %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
