// Package locale holds the per-language tables of PayPal activity exports:
// column names, date layout, number separators and the transaction type
// strings that select special handling. A Locale is plain data; adding a
// language means adding a table, not code.
package locale

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Canonical row keys.
const (
	KeyDate           = "date"
	KeyTime           = "time"
	KeyTimezone       = "timezone"
	KeyName           = "name"
	KeyType           = "txn_type"
	KeyStatus         = "status"
	KeyCurrency       = "currency"
	KeyGross          = "gross"
	KeyFee            = "fee"
	KeyNet            = "net"
	KeyFrom           = "from"
	KeyTo             = "to"
	KeyTxnID          = "txn_id"
	KeyReferenceTxnID = "reference_txn_id"
	KeyReceiptID      = "receipt_id"
	KeyItemTitle      = "item_title"
	KeySubject        = "subject"
	KeyNote           = "note"
	KeyBalance        = "balance"
	KeyBalanceImpact  = "balance_impact"
)

// Field maps an export column to a canonical key.
type Field struct {
	Column   string
	Key      string
	Optional bool // absent from some exports; not checked by Identify
}

// MetaField copies a raw column into entry metadata under Key.
type MetaField struct {
	Key    string `yaml:"key"`
	Column string `yaml:"column"`
}

// Locale describes one language variant of the export.
type Locale struct {
	Name       string
	Fields     []Field
	Metadata   []MetaField
	DateLayout string // time.Parse layout

	// Thousands lists the grouping separators removed before parsing numbers.
	Thousands []string
	// DecimalMark is replaced with "." before parsing numbers.
	DecimalMark string

	FromChecking       string // type of a bank deposit into the PayPal balance
	CurrencyConversion string // type of either leg of a currency conversion
}

// ParseError reports a date or number that does not match the locale's format.
type ParseError struct {
	Field  string
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Layout != "" {
		return fmt.Sprintf("parsing %s %q (want %q): %v", e.Field, e.Value, e.Layout, e.Err)
	}
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NormalizeKeys renames mapped columns to canonical keys. Unmapped keys are kept.
func (l *Locale) NormalizeKeys(row map[string]string) map[string]string {
	out := make(map[string]string, len(row))
	for k, v := range row {
		out[l.keyFor(k)] = v
	}
	return out
}

func (l *Locale) keyFor(column string) string {
	for _, f := range l.Fields {
		if f.Column == column {
			return f.Key
		}
	}
	return column
}

// Identify reports whether fieldNames contains every required column.
func (l *Locale) Identify(fieldNames []string) bool {
	have := make(map[string]bool, len(fieldNames))
	for _, name := range fieldNames {
		have[name] = true
	}
	for _, f := range l.Fields {
		if !f.Optional && !have[f.Column] {
			return false
		}
	}
	return true
}

// MissingColumns returns the required columns absent from fieldNames.
func (l *Locale) MissingColumns(fieldNames []string) []string {
	have := make(map[string]bool, len(fieldNames))
	for _, name := range fieldNames {
		have[name] = true
	}
	var missing []string
	for _, f := range l.Fields {
		if !f.Optional && !have[f.Column] {
			missing = append(missing, f.Column)
		}
	}
	return missing
}

// ParseDate parses a date column value.
func (l *Locale) ParseDate(s string) (civil.Date, error) {
	t, err := time.Parse(l.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, &ParseError{Field: KeyDate, Value: s, Layout: l.DateLayout, Err: err}
	}
	return civil.DateOf(t), nil
}

// Decimal rewrites a localized number into the "1234.56" form.
func (l *Locale) Decimal(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range l.Thousands {
		s = strings.ReplaceAll(s, sep, "")
	}
	if l.DecimalMark != "" && l.DecimalMark != "." {
		s = strings.ReplaceAll(s, l.DecimalMark, ".")
	}
	return s
}

// ParseAmount normalizes and parses a number column value.
func (l *Locale) ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(l.Decimal(s))
	if err != nil {
		return decimal.Decimal{}, &ParseError{Field: field, Value: s, Err: err}
	}
	return d, nil
}

// TxnFromChecking reports whether a type string denotes a bank deposit.
func (l *Locale) TxnFromChecking(txnType string) bool {
	return txnType == l.FromChecking
}

// TxnCurrencyConversion reports whether a type string denotes a conversion leg.
func (l *Locale) TxnCurrencyConversion(txnType string) bool {
	return txnType == l.CurrencyConversion
}
