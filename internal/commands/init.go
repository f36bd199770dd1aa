package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/paypalbean/internal/config"
	"github.com/cleared-dev/paypalbean/internal/locale"
)

func newInitCommand(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.flags.configPath
			if len(args) > 0 {
				path = args[0]
			}
			return runInit(cmd, a, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, a *app, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	name := a.flags.locale
	if name == "" {
		name = locale.DefaultName
	}
	cfg := config.Default(name)
	cfg.Email = a.flags.email
	if a.flags.account != "" {
		cfg.Account = a.flags.account
	}
	if err := cfg.Validate(a.locales); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	a.log.Debug().Str("locale", cfg.Locale).Msg("config written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
