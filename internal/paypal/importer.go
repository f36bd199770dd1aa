// Package paypal converts PayPal activity exports into ledger entries.
//
// Rows are read in file order and folded into transactions: rows sharing a
// reference transaction id become postings of one transaction, bank deposits
// post against the checking account, the two legs of a currency conversion
// are merged into one priced pair, and fees go to the commission account.
// A balance assertion is added from the last row's running balance.
package paypal

import (
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/paypalbean/internal/locale"
	"github.com/cleared-dev/paypalbean/internal/model"
)

// Config holds the importer settings.
type Config struct {
	Email             string // account owner; empty matches any file
	Account           string
	CheckingAccount   string
	CommissionAccount string

	DefaultExpenseAccount string
	DefaultIncomeAccount  string

	Locale   *locale.Locale     // nil means English
	Metadata []locale.MetaField // nil means the locale's own
	Logger   *zerolog.Logger
}

// Importer reads PayPal exports for one account.
type Importer struct {
	email    string
	rules    Rules
	metadata []locale.MetaField
	log      zerolog.Logger
}

// New validates cfg and returns an Importer.
func New(cfg Config) (*Importer, error) {
	if cfg.Account == "" {
		return nil, errors.New("account is required")
	}
	if cfg.CheckingAccount == "" {
		return nil, errors.New("checking account is required")
	}
	if cfg.CommissionAccount == "" {
		return nil, errors.New("commission account is required")
	}

	l := cfg.Locale
	if l == nil {
		l = locale.English()
	}
	meta := cfg.Metadata
	if meta == nil {
		meta = l.Metadata
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Importer{
		email: cfg.Email,
		rules: Rules{
			Locale: l,
			Accounts: Accounts{
				Wallet:     cfg.Account,
				Checking:   cfg.CheckingAccount,
				Commission: cfg.CommissionAccount,
				Expense:    cfg.DefaultExpenseAccount,
				Income:     cfg.DefaultIncomeAccount,
			},
		},
		metadata: meta,
		log:      log.With().Str("locale", l.Name).Logger(),
	}, nil
}

// Account returns the tracked wallet account.
func (imp *Importer) Account() string { return imp.rules.Accounts.Wallet }

// Filename returns the archival name for a file. PayPal exports keep their own.
func (imp *Importer) Filename() string { return "" }

// Identify reports whether path is an export this importer handles: the
// header has every required column and the first data row was sent from or
// to the configured email. Unreadable files are not identified.
func (imp *Importer) Identify(path string) bool {
	rr, err := openRows(path)
	if err != nil {
		imp.log.Debug().Err(err).Str("file", path).Msg("not identified")
		return false
	}
	defer rr.Close()

	if missing := imp.rules.Locale.MissingColumns(rr.Header()); len(missing) > 0 {
		imp.log.Debug().Str("file", path).Strs("missing", missing).Msg("not identified")
		return false
	}

	rec, err := rr.Next()
	if err != nil {
		imp.log.Debug().Err(err).Str("file", path).Msg("not identified: no data row")
		return false
	}
	if imp.email == "" {
		return true
	}

	row := imp.rules.Locale.NormalizeKeys(rec.Map())
	if row[locale.KeyFrom] != imp.email && row[locale.KeyTo] != imp.email {
		imp.log.Debug().Str("file", path).Msg("not identified: email does not match")
		return false
	}
	return true
}

// Extract reads path and returns its entries. Transactions whose uuid is in
// existing are marked as duplicates. Any malformed row fails the whole file.
func (imp *Importer) Extract(path string, existing map[string]bool) ([]model.Entry, error) {
	rr, err := openRows(path)
	if err != nil {
		return nil, err
	}
	defer rr.Close()

	var (
		st   groupState
		last *Row
	)
	for {
		rec, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		row, err := normalizeRow(imp.rules.Locale, imp.metadata, rec)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", path, err)
		}

		opened := len(st.entries)
		imp.rules.step(&st, row, path)
		if len(st.entries) > opened {
			imp.log.Debug().Int("line", row.Line).Str("ref", row.ReferenceTxnID).Msg("transaction opened")
		}
		last = &row
	}

	if st.pending != nil {
		imp.log.Warn().
			Str("file", path).
			Str("amount", st.pending.Number.String()).
			Str("currency", st.pending.Currency).
			Msg("currency conversion leg without counterpart dropped")
	}

	entries := st.entries
	if last != nil && last.Balance != "" {
		bal, err := imp.balance(*last, path)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", path, err)
		}
		entries = append(entries, bal)
	}

	if n := MarkDuplicates(entries, existing); n > 0 {
		imp.log.Info().Str("file", path).Int("duplicates", n).Msg("marked duplicates")
	}
	return entries, nil
}

// balance builds the assertion for the day after the last row.
func (imp *Importer) balance(last Row, path string) (*model.Balance, error) {
	n, err := imp.rules.Locale.ParseAmount(locale.KeyBalance, last.Balance)
	if err != nil {
		return nil, &FormatError{Line: last.Line, Err: err}
	}
	return &model.Balance{
		Source:  model.Source{File: path, Line: last.Line + 1},
		Date:    last.Date.AddDays(1),
		Account: imp.rules.Accounts.Wallet,
		Amount:  model.NewAmount(n, last.Currency),
	}, nil
}

// Date returns the latest entry date in path. It reports false when the file
// cannot be extracted or has no entries.
func (imp *Importer) Date(path string) (civil.Date, bool) {
	entries, err := imp.Extract(path, nil)
	if err != nil {
		return civil.Date{}, false
	}
	return LatestDate(entries)
}

// LatestDate returns the latest date among entries, false if there are none.
func LatestDate(entries []model.Entry) (civil.Date, bool) {
	if len(entries) == 0 {
		return civil.Date{}, false
	}
	latest := entries[0].EntryDate()
	for _, e := range entries[1:] {
		if e.EntryDate().After(latest) {
			latest = e.EntryDate()
		}
	}
	return latest, true
}
