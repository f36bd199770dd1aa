package ledger

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/paypalbean/internal/model"
)

// defaultTolerance applies to currencies go-money does not know.
var defaultTolerance = decimal.New(5, -3)

// ImbalanceError reports a transaction whose postings do not sum to zero in
// one currency.
type ImbalanceError struct {
	Date     civil.Date
	Payee    string
	Line     int
	Currency string
	Residual decimal.Decimal
}

func (e ImbalanceError) Error() string {
	return fmt.Sprintf("%s %q (line %d): %s does not balance by %s", e.Date, e.Payee, e.Line, e.Currency, e.Residual)
}

// Tolerance returns the largest residual accepted for currency: half of its
// minor unit.
func Tolerance(currency string) decimal.Decimal {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return defaultTolerance
	}
	return decimal.New(5, -int32(cur.Fraction)-1)
}

// Validate sums the posting weights of txn per currency and reports every
// currency whose residual exceeds its tolerance. Transactions without
// postings are not checked.
func Validate(txn *model.Transaction) []ImbalanceError {
	sums := make(map[string]decimal.Decimal)
	for _, p := range txn.Postings {
		w := p.Weight()
		sums[w.Currency] = sums[w.Currency].Add(w.Number)
	}

	currencies := make([]string, 0, len(sums))
	for c := range sums {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	var errs []ImbalanceError
	for _, c := range currencies {
		residual := sums[c]
		if residual.Abs().GreaterThan(Tolerance(c)) {
			errs = append(errs, ImbalanceError{
				Date:     txn.Date,
				Payee:    txn.Payee,
				Line:     txn.Source.Line,
				Currency: c,
				Residual: residual,
			})
		}
	}
	return errs
}

// ValidateEntries runs Validate over every transaction in entries.
func ValidateEntries(entries []model.Entry) []ImbalanceError {
	var errs []ImbalanceError
	for _, e := range entries {
		if txn, ok := e.(*model.Transaction); ok {
			errs = append(errs, Validate(txn)...)
		}
	}
	return errs
}
