package accounts

// Chart names the accounts an importer books to.
type Chart struct {
	Wallet     string
	Checking   string
	Commission string
	Expense    string
	Income     string
}

// DefaultChart returns the accounts written by `init` for a currency.
func DefaultChart(currency string) Chart {
	switch currency {
	case "EUR":
		return Chart{
			Wallet:     "Assets:EU:PayPal",
			Checking:   "Assets:EU:Bank:Checking",
			Commission: "Expenses:Financial:Commissions",
		}
	default:
		return Chart{
			Wallet:     "Assets:US:PayPal",
			Checking:   "Assets:US:Bank:Checking",
			Commission: "Expenses:Financial:Commissions",
		}
	}
}

// Names returns the non-empty account names of c.
func (c Chart) Names() []string {
	var names []string
	for _, n := range []string{c.Wallet, c.Checking, c.Commission, c.Expense, c.Income} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
