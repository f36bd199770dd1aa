package model

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Flag marks the review state of a transaction.
type Flag string

const (
	FlagOkay    Flag = "*"
	FlagWarning Flag = "!"
)

// Amount is a signed number in a currency.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// NewAmount returns an Amount.
func NewAmount(number decimal.Decimal, currency string) Amount {
	return Amount{Number: number, Currency: currency}
}

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount {
	return Amount{Number: a.Number.Neg(), Currency: a.Currency}
}

// Equal reports whether both number and currency match.
func (a Amount) Equal(b Amount) bool {
	return a.Currency == b.Currency && a.Number.Equal(b.Number)
}

// Posting is one leg of a transaction.
type Posting struct {
	Account string
	Units   Amount
	Price   *Amount // per-unit price, set only on conversion legs
}

// Weight returns the amount the posting contributes to the transaction balance.
// Priced postings weigh in the price currency.
func (p Posting) Weight() Amount {
	if p.Price == nil {
		return p.Units
	}
	return Amount{Number: p.Units.Number.Mul(p.Price.Number), Currency: p.Price.Currency}
}

// MetaItem is a single metadata key/value pair.
type MetaItem struct {
	Key   string
	Value string
}

// Meta is ordered entry metadata.
type Meta []MetaItem

// Get returns the value for key.
func (m Meta) Get(key string) (string, bool) {
	for _, item := range m {
		if item.Key == key {
			return item.Value, true
		}
	}
	return "", false
}

// Source locates the CSV line an entry came from. Line is 1-based, the header being line 1.
type Source struct {
	File string
	Line int
}

// Entry is a dated ledger directive: *Transaction or *Balance.
type Entry interface {
	EntryDate() civil.Date
	EntrySource() Source
}

// Transaction is a ledger transaction.
type Transaction struct {
	Source    Source
	Date      civil.Date
	Flag      Flag
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Meta      Meta
	Postings  []Posting
	Duplicate bool // already present in the target ledger
}

// EntryDate returns the transaction date.
func (t *Transaction) EntryDate() civil.Date { return t.Date }

// EntrySource returns where the transaction was read from.
func (t *Transaction) EntrySource() Source { return t.Source }

// AddPosting appends a posting without a price.
func (t *Transaction) AddPosting(account string, units Amount) {
	t.Postings = append(t.Postings, Posting{Account: account, Units: units})
}

// Balance asserts the balance of an account at the start of Date.
type Balance struct {
	Source  Source
	Date    civil.Date
	Account string
	Amount  Amount
}

// EntryDate returns the assertion date.
func (b *Balance) EntryDate() civil.Date { return b.Date }

// EntrySource returns where the assertion was derived from.
func (b *Balance) EntrySource() Source { return b.Source }
