// Package config loads paypalbean.yaml and applies overrides from the
// environment and a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/paypalbean/internal/accounts"
	"github.com/cleared-dev/paypalbean/internal/locale"
	"github.com/cleared-dev/paypalbean/internal/paypal"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "paypalbean.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PAYPALBEAN_"

// Config represents paypalbean.yaml.
type Config struct {
	Email                 string             `yaml:"email"`
	Account               string             `yaml:"account"`
	CheckingAccount       string             `yaml:"checking_account"`
	CommissionAccount     string             `yaml:"commission_account"`
	DefaultExpenseAccount string             `yaml:"default_expense_account,omitempty"`
	DefaultIncomeAccount  string             `yaml:"default_income_account,omitempty"`
	Locale                string             `yaml:"locale"`
	Metadata              []locale.MetaField `yaml:"metadata,omitempty"` // empty means the locale's own
}

// Load reads a paypalbean.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Locale == "" {
		cfg.Locale = locale.DefaultName
	}
	return &cfg, nil
}

// LoadOrDefault reads path, falling back to an empty config with the
// default locale when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{Locale: locale.DefaultName}, nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config for a new ledger, with accounts suited to the
// locale's usual currency.
func Default(localeName string) *Config {
	currency := "USD"
	switch strings.ToLower(localeName) {
	case "de", "fr":
		currency = "EUR"
	}
	chart := accounts.DefaultChart(currency)
	return &Config{
		Account:           chart.Wallet,
		CheckingAccount:   chart.Checking,
		CommissionAccount: chart.Commission,
		Locale:            localeName,
	}
}

// LoadEnv loads a .env file into the process environment. Without a path
// it tries .env in the working directory and ignores its absence.
func LoadEnv(envPath ...string) error {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
		return nil
	}
	_ = godotenv.Load()
	return nil
}

// ApplyEnv overrides fields with the PAYPALBEAN_* variables that are set.
func (c *Config) ApplyEnv() {
	for name, field := range c.envFields() {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*field = v
		}
	}
}

func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"EMAIL":                   &c.Email,
		"ACCOUNT":                 &c.Account,
		"CHECKING_ACCOUNT":        &c.CheckingAccount,
		"COMMISSION_ACCOUNT":      &c.CommissionAccount,
		"DEFAULT_EXPENSE_ACCOUNT": &c.DefaultExpenseAccount,
		"DEFAULT_INCOME_ACCOUNT":  &c.DefaultIncomeAccount,
		"LOCALE":                  &c.Locale,
	}
}

// Validate checks that the required accounts are set, every account name
// is well formed, and the locale is registered.
func (c *Config) Validate(reg *locale.Registry) error {
	var problems []string

	required := []struct{ key, value string }{
		{"account", c.Account},
		{"checking_account", c.CheckingAccount},
		{"commission_account", c.CommissionAccount},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, r.key+" is required")
		}
	}

	for _, name := range []string{c.Account, c.CheckingAccount, c.CommissionAccount, c.DefaultExpenseAccount, c.DefaultIncomeAccount} {
		if name == "" {
			continue
		}
		if err := accounts.Validate(name); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if reg.Get(c.Locale) == nil {
		problems = append(problems, fmt.Sprintf("unknown locale %q (have %s)", c.Locale, strings.Join(reg.Names(), ", ")))
	}

	for i, m := range c.Metadata {
		if m.Key == "" || m.Column == "" {
			problems = append(problems, fmt.Sprintf("metadata[%d] needs both key and column", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Importer validates c and builds the importer settings from it.
func (c *Config) Importer(reg *locale.Registry, log *zerolog.Logger) (paypal.Config, error) {
	if err := c.Validate(reg); err != nil {
		return paypal.Config{}, err
	}
	l := reg.Get(c.Locale)
	return paypal.Config{
		Email:                 c.Email,
		Account:               c.Account,
		CheckingAccount:       c.CheckingAccount,
		CommissionAccount:     c.CommissionAccount,
		DefaultExpenseAccount: c.DefaultExpenseAccount,
		DefaultIncomeAccount:  c.DefaultIncomeAccount,
		Locale:                l,
		Metadata:              c.Metadata,
		Logger:                log,
	}, nil
}
