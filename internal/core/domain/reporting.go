package domain

import "time"

// AccountAmount represents an account with its net amount (minor units) for
// financial reports.
type AccountAmount struct {
	AccountCode string `json:"accountCode"`
	Name        string `json:"name"`
	NetAmount   int64  `json:"netAmount"`
}

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Debit       int64       `json:"debit"`
	Credit      int64       `json:"credit"`
}

// BalanceSheetReport groups account balances into the standard
// current/non-current buckets as of a date. Equity includes the retained
// net income of revenue/expense accounts so that the accounting equation
// holds: TotalAssets == TotalLiabilities + TotalEquity (Balanced allows a
// 1-minor-unit rounding tolerance).
type BalanceSheetReport struct {
	AsOf                  time.Time       `json:"asOf"`
	CurrentAssets         []AccountAmount `json:"currentAssets"`
	NonCurrentAssets      []AccountAmount `json:"nonCurrentAssets"`
	CurrentLiabilities    []AccountAmount `json:"currentLiabilities"`
	NonCurrentLiabilities []AccountAmount `json:"nonCurrentLiabilities"`
	Equity                []AccountAmount `json:"equity"`
	RetainedEarnings      int64           `json:"retainedEarnings"` // Net income to date
	TotalAssets           int64           `json:"totalAssets"`
	TotalLiabilities      int64           `json:"totalLiabilities"`
	TotalEquity           int64           `json:"totalEquity"`
	Balanced              bool            `json:"balanced"`
}

// ProfitAndLossReport aggregates posted, non-reversed activity over a period.
type ProfitAndLossReport struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	Revenue           []AccountAmount `json:"revenue"`
	CostOfSales       []AccountAmount `json:"costOfSales"`
	OperatingExpenses []AccountAmount `json:"operatingExpenses"`
	TotalRevenue      int64           `json:"totalRevenue"`
	TotalCostOfSales  int64           `json:"totalCostOfSales"`
	GrossProfit       int64           `json:"grossProfit"`
	TotalOperating    int64           `json:"totalOperatingExpenses"`
	NetIncome         int64           `json:"netIncome"`
}

// LedgerRow is one movement on an account in the general-ledger view.
type LedgerRow struct {
	EntryID        string    `json:"entryID"`
	EntryDate      time.Time `json:"entryDate"`
	Description    string    `json:"description"`
	Reference      string    `json:"reference"`
	Debit          int64     `json:"debit"`
	Credit         int64     `json:"credit"`
	RunningBalance int64     `json:"runningBalance"`
}
