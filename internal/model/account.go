package model

// AccountType classifies ledger accounts by their root component.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Assets"
	AccountTypeLiability AccountType = "Liabilities"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expenses"
)

// AccountTypes lists the valid root account types in ledger order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
}

// AccountSeparator separates the components of an account name.
const AccountSeparator = ":"
