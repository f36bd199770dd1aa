package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/paypalbean/internal/config"
	"github.com/cleared-dev/paypalbean/internal/locale"
	"github.com/cleared-dev/paypalbean/internal/logger"
	"github.com/cleared-dev/paypalbean/internal/paypal"
)

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	locale     string
	email      string
	account    string
	verbose    bool
}

// app is the state resolved before a subcommand runs.
type app struct {
	flags   globalFlags
	cfg     *config.Config
	locales *locale.Registry
	log     zerolog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{locales: locale.DefaultRegistry(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:     "paypalbean",
		Short:   "Import PayPal activity exports into a beancount ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", config.DefaultFile, "config file")
	pf.StringVar(&a.flags.envFile, "env-file", "", "load environment overrides from this .env file")
	pf.StringVar(&a.flags.locale, "locale", "", "export language (en, de, fr)")
	pf.StringVar(&a.flags.email, "email", "", "account owner email the export must mention")
	pf.StringVar(&a.flags.account, "account", "", "ledger account of the PayPal balance")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug details")

	rootCmd.AddCommand(
		newInitCommand(a),
		newIdentifyCommand(a),
		newExtractCommand(a),
		newDateCommand(a),
		newArchiveCommand(a),
	)

	return rootCmd
}

// setup loads the environment and config file, then applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = logger.New(cmd.ErrOrStderr(), a.flags.verbose)
	cmd.SetContext(logger.WithContext(cmd.Context(), a.log))

	if err := config.LoadEnv(a.flags.envFile); err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(a.flags.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if a.flags.locale != "" {
		cfg.Locale = a.flags.locale
	}
	if a.flags.email != "" {
		cfg.Email = a.flags.email
	}
	if a.flags.account != "" {
		cfg.Account = a.flags.account
	}
	a.cfg = cfg
	return nil
}

// importer builds a PayPal importer from the resolved config.
func (a *app) importer() (*paypal.Importer, error) {
	ic, err := a.cfg.Importer(a.locales, &a.log)
	if err != nil {
		return nil, err
	}
	return paypal.New(ic)
}
