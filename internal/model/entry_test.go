package model

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPostingWeight(t *testing.T) {
	plain := Posting{Account: "Assets:PayPal", Units: NewAmount(decimal.RequireFromString("92.15"), "EUR")}
	assert.True(t, plain.Weight().Equal(plain.Units))

	price := NewAmount(decimal.RequireFromString("0.9215"), "EUR")
	priced := Posting{
		Account: "Assets:PayPal",
		Units:   NewAmount(decimal.RequireFromString("-100.00"), "USD"),
		Price:   &price,
	}
	w := priced.Weight()
	assert.Equal(t, "EUR", w.Currency)
	assert.Equal(t, "-92.15", w.Number.StringFixed(2))
}

func TestMetaGet(t *testing.T) {
	m := Meta{{Key: "uuid", Value: "X1"}, {Key: "sender", Value: "a@example.com"}}

	v, ok := m.Get("sender")
	assert.True(t, ok)
	assert.Equal(t, "a@example.com", v)

	_, ok = m.Get("recipient")
	assert.False(t, ok)
}

func TestEntryInterface(t *testing.T) {
	day := civil.Date{Year: 2025, Month: 9, Day: 29}
	entries := []Entry{
		&Transaction{Date: day, Source: Source{File: "in.csv", Line: 2}},
		&Balance{Date: day.AddDays(1), Source: Source{File: "in.csv", Line: 3}},
	}
	assert.Equal(t, day, entries[0].EntryDate())
	assert.Equal(t, 3, entries[1].EntrySource().Line)
	assert.Equal(t, civil.Date{Year: 2025, Month: 9, Day: 30}, entries[1].EntryDate())
}

func TestAmountNeg(t *testing.T) {
	a := NewAmount(decimal.RequireFromString("500.00"), "USD")
	assert.Equal(t, "-500.00", a.Neg().Number.StringFixed(2))
	assert.Equal(t, "USD", a.Neg().Currency)
}
