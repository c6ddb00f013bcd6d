package domain

// AccountType defines the fundamental accounting type of a GL account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	ExpenseAccount AccountType = "EXPENSE"
)

// Account represents a general-ledger account in the chart of accounts.
// Balance is a cache of the signed sum of all posted journal lines
// referencing this account; the lines are the source of truth and the
// reconciliation sweep is the repair path when the cache drifts.
type Account struct {
	Code        string      `json:"code"` // Primary key, e.g. "1310"
	Name        string      `json:"name"`
	Type        AccountType `json:"type"`
	ParentCode  string      `json:"parentCode"`  // Optional hierarchy, "" for top level
	Balance     int64       `json:"balance"`     // Cached, minor currency units
	IsCurrent   bool        `json:"isCurrent"`   // Balance-sheet bucket for ASSET/LIABILITY
	CostOfSales bool        `json:"costOfSales"` // P&L bucket for EXPENSE accounts
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// NormalDebit reports whether the account's balance grows on the debit side.
func (a Account) NormalDebit() bool {
	return a.Type == Asset || a.Type == ExpenseAccount
}
