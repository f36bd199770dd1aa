package locale

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columns(l *Locale, optional bool) []string {
	var cols []string
	for _, f := range l.Fields {
		if optional || !f.Optional {
			cols = append(cols, f.Column)
		}
	}
	return cols
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		locale *Locale
		in     string
		want   string
	}{
		{German(), "1.234,56", "1234.56"},
		{German(), "92,15", "92.15"},
		{German(), "-100,00", "-100.00"},
		{German(), "-1.234.567,89", "-1234567.89"},
		{English(), "500.00", "500.00"},
		{English(), "1,234.56", "1234.56"},
		{English(), "-2.90", "-2.90"},
		{French(), "1 234,56", "1234.56"},
		{French(), "1\u00a0234,56", "1234.56"},
		{French(), "-12,00", "-12.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.locale.Decimal(tt.in), "%s Decimal(%q)", tt.locale.Name, tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	d, err := German().ParseAmount(KeyGross, "1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.StringFixed(2))

	_, err = English().ParseAmount(KeyFee, "n/a")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, KeyFee, perr.Field)
	assert.Equal(t, "n/a", perr.Value)
	assert.Contains(t, err.Error(), "parsing fee")
}

func TestParseDate(t *testing.T) {
	d, err := English().ParseDate("09/29/2025")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: 9, Day: 29}, d)

	d, err = German().ParseDate("25.09.2025")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: 9, Day: 25}, d)

	d, err = French().ParseDate("03/10/2025")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: 10, Day: 3}, d)
}

func TestParseDate_Mismatch(t *testing.T) {
	_, err := German().ParseDate("09/29/2025")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "02.01.2006", perr.Layout)
	assert.Equal(t, KeyDate, perr.Field)
}

func TestNormalizeKeys(t *testing.T) {
	raw := map[string]string{
		"Datum":         "25.09.2025",
		"Typ":           "Allgemeine Währungsumrechnung",
		"Brutto":        "92,15",
		"Artikelnummer": "A-1",
	}
	l := German()
	got := l.NormalizeKeys(raw)

	assert.Equal(t, "25.09.2025", got[KeyDate])
	assert.Equal(t, "Allgemeine Währungsumrechnung", got[KeyType])
	assert.Equal(t, "92,15", got[KeyGross])
	assert.Equal(t, "A-1", got["Artikelnummer"], "unmapped keys pass through")
	assert.Len(t, got, 4)

	assert.Equal(t, got, l.NormalizeKeys(got), "normalizing twice changes nothing")
}

func TestNormalizeKeys_EnglishTypeMapsToTxnType(t *testing.T) {
	got := English().NormalizeKeys(map[string]string{"Type": "Mobile Payment"})
	assert.Equal(t, "Mobile Payment", got[KeyType])
	_, ok := got["type"]
	assert.False(t, ok)
}

func TestIdentify(t *testing.T) {
	for _, l := range []*Locale{English(), German(), French()} {
		assert.True(t, l.Identify(columns(l, true)), "%s full header", l.Name)
		assert.True(t, l.Identify(columns(l, false)), "%s without optional columns", l.Name)

		required := columns(l, false)
		for i := range required {
			header := append(append([]string{}, required[:i]...), required[i+1:]...)
			assert.False(t, l.Identify(header), "%s without %q", l.Name, required[i])
		}
	}
}

func TestIdentify_WrongLanguage(t *testing.T) {
	assert.False(t, German().Identify(columns(English(), true)))
	assert.False(t, English().Identify(columns(German(), true)))
}

func TestMissingColumns(t *testing.T) {
	l := English()
	header := columns(l, false)[2:]
	assert.Equal(t, []string{"Date", "Time"}, l.MissingColumns(header))
	assert.Empty(t, l.MissingColumns(columns(l, false)))
}

func TestClassification(t *testing.T) {
	en := English()
	assert.True(t, en.TxnFromChecking("Bank Deposit to PP Account "))
	assert.False(t, en.TxnFromChecking("Bank Deposit to PP Account"), "trailing space is part of the literal")
	assert.True(t, en.TxnCurrencyConversion("General Currency Conversion"))
	assert.False(t, en.TxnCurrencyConversion("Mobile Payment"))

	de := German()
	assert.True(t, de.TxnFromChecking("Bankgutschrift auf PayPal-Konto"))
	assert.True(t, de.TxnCurrencyConversion("Allgemeine Währungsumrechnung"))
	assert.False(t, de.TxnCurrencyConversion("General Currency Conversion"))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"de", "en", "fr"}, r.Names())
	require.NotNil(t, r.Get("DE"))
	assert.Equal(t, "de", r.Get("de").Name)
	assert.Nil(t, r.Get("it"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(English())
	assert.Panics(t, func() { r.Register(English()) })
}
