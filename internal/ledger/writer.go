// Package ledger reads and writes beancount text and checks that
// transactions balance.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/paypalbean/internal/model"
)

const indent = "  "

// Write serializes entries in beancount syntax, separated by blank lines.
// Transactions marked as duplicates are written commented out.
func Write(w io.Writer, entries []model.Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if i > 0 {
			bw.WriteString("\n")
		}
		var lines []string
		switch e := e.(type) {
		case *model.Transaction:
			lines = transactionLines(e)
			if e.Duplicate {
				for j, l := range lines {
					lines[j] = "; " + l
				}
			}
		case *model.Balance:
			lines = []string{balanceLine(e)}
		default:
			return fmt.Errorf("writing entry %d: unsupported type %T", i, e)
		}
		for _, l := range lines {
			bw.WriteString(l)
			bw.WriteString("\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// MarshalTransaction returns the beancount text of one transaction.
func MarshalTransaction(txn *model.Transaction) string {
	return strings.Join(transactionLines(txn), "\n") + "\n"
}

func transactionLines(txn *model.Transaction) []string {
	var head strings.Builder
	head.WriteString(txn.Date.String())
	head.WriteString(" ")
	head.WriteString(string(txn.Flag))
	head.WriteString(" ")
	head.WriteString(quote(txn.Payee))
	head.WriteString(" ")
	head.WriteString(quote(txn.Narration))
	for _, tag := range txn.Tags {
		head.WriteString(" #" + tag)
	}
	for _, link := range txn.Links {
		head.WriteString(" ^" + link)
	}

	lines := []string{head.String()}
	for _, m := range txn.Meta {
		if m.Value == "" {
			continue
		}
		lines = append(lines, indent+m.Key+": "+quote(m.Value))
	}
	for _, p := range txn.Postings {
		line := indent + p.Account + indent + FormatAmount(p.Units)
		if p.Price != nil {
			line += " @ " + p.Price.Number.String() + " " + p.Price.Currency
		}
		lines = append(lines, line)
	}
	return lines
}

func balanceLine(b *model.Balance) string {
	return fmt.Sprintf("%s balance %s%s%s", b.Date, b.Account, indent, FormatAmount(b.Amount))
}

// FormatAmount prints an amount keeping the number's own precision:
// "500.00 USD" stays "500.00 USD".
func FormatAmount(a model.Amount) string {
	return formatNumber(a.Number) + " " + a.Currency
}

func formatNumber(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
