package paypal

import (
	"github.com/cleared-dev/paypalbean/internal/locale"
	"github.com/cleared-dev/paypalbean/internal/model"
)

// Accounts names the ledger accounts postings are booked to.
type Accounts struct {
	Wallet     string // the PayPal balance being imported
	Checking   string // source of bank deposits
	Commission string // PayPal fees
	Expense    string // optional counter account for outgoing payments
	Income     string // optional counter account for incoming payments
}

// Rules decide which postings a row produces.
type Rules struct {
	Locale   *locale.Locale
	Accounts Accounts
}

// groupState is carried from one row to the next within a single file.
type groupState struct {
	entries []model.Entry
	txn     *model.Transaction
	started bool
	lastRef string        // txn_id of the row that opened txn
	pending *model.Amount // first leg of an unresolved conversion
}

// Group folds rows into transactions. It also returns the conversion leg
// left unpaired at the end, if any.
func Group(rows []Row, rules Rules) ([]model.Entry, *model.Amount) {
	var st groupState
	for _, row := range rows {
		rules.step(&st, row, "")
	}
	return st.entries, st.pending
}

// step applies one row. Rows whose reference id differs from the id of the
// row that opened the current transaction open a new one; the rest add
// postings to it. The transaction is part of entries from the moment it
// is opened.
func (r Rules) step(st *groupState, row Row, file string) {
	opened := !st.started || row.ReferenceTxnID != st.lastRef
	if opened {
		st.txn = &model.Transaction{
			Source:    model.Source{File: file, Line: row.Line},
			Date:      row.Date,
			Flag:      model.FlagOkay,
			Payee:     row.Name,
			Narration: row.Narration(),
			Tags:      []string{},
			Links:     []string{},
			Meta:      row.Meta,
		}
		st.entries = append(st.entries, st.txn)
	}

	txn := st.txn
	wallet := r.Accounts.Wallet

	switch {
	case r.Locale.TxnFromChecking(row.Type):
		txn.AddPosting(r.Accounts.Checking, model.NewAmount(row.Gross.Neg(), row.Currency))
		txn.AddPosting(wallet, model.NewAmount(row.Net, row.Currency))

	case r.Locale.TxnCurrencyConversion(row.Type):
		if st.pending == nil {
			leg := model.NewAmount(row.Net, row.Currency)
			st.pending = &leg
			break
		}
		first := *st.pending
		second := model.Posting{Account: wallet, Units: model.NewAmount(row.Net, row.Currency)}
		// A zero leg has no rate; it stays unpriced and fails the balance check.
		if !row.Net.IsZero() {
			price := model.NewAmount(first.Number.Div(row.Net).Neg(), first.Currency)
			second.Price = &price
		}
		txn.AddPosting(wallet, first)
		txn.Postings = append(txn.Postings, second)
		st.pending = nil

	default:
		txn.AddPosting(wallet, model.NewAmount(row.Net, row.Currency))
		if counter := r.counterAccount(row); counter != "" {
			txn.AddPosting(counter, model.NewAmount(row.Gross.Neg(), row.Currency))
		}
	}

	if row.Fee.IsPositive() {
		txn.AddPosting(r.Accounts.Commission, model.NewAmount(row.Fee, row.Currency))
	}

	if opened {
		st.lastRef = row.TxnID
		st.started = true
	}
}

func (r Rules) counterAccount(row Row) string {
	switch {
	case row.Gross.IsPositive():
		return r.Accounts.Income
	case row.Gross.IsNegative():
		return r.Accounts.Expense
	}
	return ""
}
