package paypal

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/paypalbean/internal/locale"
	"github.com/cleared-dev/paypalbean/internal/model"
)

// Row is a normalized export row.
type Row struct {
	Line           int
	Date           civil.Date
	Name           string
	Type           string // untranslated, as exported
	Currency       string
	Gross          decimal.Decimal
	Fee            decimal.Decimal
	Net            decimal.Decimal
	From           string
	To             string
	TxnID          string
	ReferenceTxnID string
	ItemTitle      string
	Subject        string
	Note           string
	Balance        string // localized, empty when absent
	Meta           model.Meta
	Fields         map[string]string // every column under its canonical key
}

// Narration returns the first non-empty of item title, subject and note.
func (r Row) Narration() string {
	for _, s := range []string{r.ItemTitle, r.Subject, r.Note} {
		if s != "" {
			return s
		}
	}
	return ""
}

// FormatError reports a row that could not be normalized.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// normalizeRow converts a raw record. Metadata is read from the raw columns
// before renaming.
func normalizeRow(l *locale.Locale, metaFields []locale.MetaField, rec record) (Row, error) {
	var meta model.Meta
	for _, mf := range metaFields {
		if v, ok := rec.Get(mf.Column); ok {
			meta = append(meta, model.MetaItem{Key: mf.Key, Value: v})
		}
	}

	f := l.NormalizeKeys(rec.Map())

	date, err := l.ParseDate(f[locale.KeyDate])
	if err != nil {
		return Row{}, &FormatError{Line: rec.line, Err: err}
	}
	gross, err := l.ParseAmount(locale.KeyGross, f[locale.KeyGross])
	if err != nil {
		return Row{}, &FormatError{Line: rec.line, Err: err}
	}
	fee, err := l.ParseAmount(locale.KeyFee, f[locale.KeyFee])
	if err != nil {
		return Row{}, &FormatError{Line: rec.line, Err: err}
	}
	net, err := l.ParseAmount(locale.KeyNet, f[locale.KeyNet])
	if err != nil {
		return Row{}, &FormatError{Line: rec.line, Err: err}
	}

	return Row{
		Line:           rec.line,
		Date:           date,
		Name:           f[locale.KeyName],
		Type:           f[locale.KeyType],
		Currency:       f[locale.KeyCurrency],
		Gross:          gross,
		Fee:            fee,
		Net:            net,
		From:           f[locale.KeyFrom],
		To:             f[locale.KeyTo],
		TxnID:          f[locale.KeyTxnID],
		ReferenceTxnID: f[locale.KeyReferenceTxnID],
		ItemTitle:      f[locale.KeyItemTitle],
		Subject:        f[locale.KeySubject],
		Note:           f[locale.KeyNote],
		Balance:        f[locale.KeyBalance],
		Meta:           meta,
		Fields:         f,
	}, nil
}
