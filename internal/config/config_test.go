package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/paypalbean/internal/locale"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("de")
	cfg.Email = "max@example.com"
	cfg.DefaultExpenseAccount = "Expenses:Uncategorized"
	cfg.Metadata = []locale.MetaField{{Key: "uuid", Column: "Transaktionscode"}}

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("en")
	assert.Equal(t, "Assets:US:PayPal", cfg.Account)
	assert.Equal(t, "Assets:US:Bank:Checking", cfg.CheckingAccount)
	assert.Equal(t, "Expenses:Financial:Commissions", cfg.CommissionAccount)
	assert.Equal(t, "en", cfg.Locale)
	assert.Empty(t, cfg.Email)
	assert.Empty(t, cfg.Metadata)
	assert.NoError(t, cfg.Validate(locale.DefaultRegistry()))

	assert.Equal(t, "Assets:EU:PayPal", Default("fr").Account)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, locale.DefaultName, cfg.Locale)
}

func TestLoadDefaultsLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("account: Assets:PayPal\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("account: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("en")
	cfg.Metadata = []locale.MetaField{{Key: "sender", Column: "From Email Address"}}
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "account: Assets:US:PayPal")
	assert.Contains(t, contents, "checking_account: Assets:US:Bank:Checking")
	assert.Contains(t, contents, "locale: en")
	assert.Contains(t, contents, "key: sender")
	assert.Contains(t, contents, "column: From Email Address")
	assert.NotContains(t, contents, "default_income_account")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PAYPALBEAN_EMAIL", "env@example.com")
	t.Setenv("PAYPALBEAN_LOCALE", "fr")
	t.Setenv("PAYPALBEAN_DEFAULT_INCOME_ACCOUNT", "Income:PayPal")

	cfg := Default("en")
	cfg.ApplyEnv()
	assert.Equal(t, "env@example.com", cfg.Email)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "Income:PayPal", cfg.DefaultIncomeAccount)
	assert.Equal(t, "Assets:US:PayPal", cfg.Account, "unset variables leave fields alone")
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAYPALBEAN_ACCOUNT=Assets:Wallet:PayPal\n"), 0o644))
	// Registered so the variable is restored after the test.
	t.Setenv("PAYPALBEAN_ACCOUNT", "")
	require.NoError(t, os.Unsetenv("PAYPALBEAN_ACCOUNT"))

	require.NoError(t, LoadEnv(path))
	cfg := Default("en")
	cfg.ApplyEnv()
	assert.Equal(t, "Assets:Wallet:PayPal", cfg.Account)

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	reg := locale.DefaultRegistry()

	cfg := &Config{Locale: "en"}
	err := cfg.Validate(reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account is required")
	assert.Contains(t, err.Error(), "checking_account is required")
	assert.Contains(t, err.Error(), "commission_account is required")

	cfg = Default("en")
	cfg.DefaultExpenseAccount = "expenses:lower"
	assert.ErrorContains(t, cfg.Validate(reg), "unknown root")

	cfg = Default("en")
	cfg.Locale = "it"
	assert.ErrorContains(t, cfg.Validate(reg), `unknown locale "it" (have de, en, fr)`)

	cfg = Default("en")
	cfg.Metadata = []locale.MetaField{{Key: "uuid"}}
	assert.ErrorContains(t, cfg.Validate(reg), "metadata[0]")
}

func TestImporter(t *testing.T) {
	reg := locale.DefaultRegistry()
	log := zerolog.Nop()

	cfg := Default("DE")
	cfg.Email = "max@example.com"
	ic, err := cfg.Importer(reg, &log)
	require.NoError(t, err)
	assert.Equal(t, "de", ic.Locale.Name)
	assert.Equal(t, "max@example.com", ic.Email)
	assert.Equal(t, cfg.Account, ic.Account)
	assert.Nil(t, ic.Metadata)

	_, err = (&Config{Locale: "en"}).Importer(reg, &log)
	assert.Error(t, err)
}
