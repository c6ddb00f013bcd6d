package domain

// ChartEntry is a predefined account in the default chart of accounts.
type ChartEntry struct {
	Code        string
	Name        string
	Type        AccountType
	IsCurrent   bool
	CostOfSales bool
}

// DefaultChart is the standard code plan installed by SeedDefaultChart.
// Assets 1xxx, liabilities 2xxx, equity 3xxx, revenue 4xxx, expenses 5xxx.
var DefaultChart = []ChartEntry{
	{Code: "1010", Name: "Cash", Type: Asset, IsCurrent: true},
	{Code: "1110", Name: "Bank", Type: Asset, IsCurrent: true},
	{Code: "1210", Name: "Accounts Receivable", Type: Asset, IsCurrent: true},
	{Code: "1310", Name: "Inventory", Type: Asset, IsCurrent: true},
	{Code: "1510", Name: "Fixed Assets", Type: Asset},
	{Code: "1520", Name: "Accumulated Depreciation", Type: Asset}, // Contra asset, credit-heavy

	{Code: "2100", Name: "Accounts Payable", Type: Liability, IsCurrent: true},
	{Code: "2200", Name: "Salaries Payable", Type: Liability, IsCurrent: true},
	{Code: "2300", Name: "Tax Payable", Type: Liability, IsCurrent: true},

	{Code: "3100", Name: "Owner's Equity", Type: Equity},
	{Code: "3200", Name: "Retained Earnings", Type: Equity},

	{Code: "4100", Name: "Sales Revenue", Type: Revenue},

	{Code: "5100", Name: "Cost of Goods Sold", Type: ExpenseAccount, CostOfSales: true},
	{Code: "5200", Name: "Operating Expenses", Type: ExpenseAccount},
	{Code: "5300", Name: "Salaries Expense", Type: ExpenseAccount},
	{Code: "5400", Name: "Depreciation Expense", Type: ExpenseAccount},
}

// Account codes referenced by the sub-ledger posters.
const (
	CodeCash               = "1010"
	CodeBank               = "1110"
	CodeAccountsReceivable = "1210"
	CodeInventory          = "1310"
	CodeFixedAssets        = "1510"
	CodeAccumDepreciation  = "1520"
	CodeAccountsPayable    = "2100"
	CodeSalariesPayable    = "2200"
	CodeTaxPayable         = "2300"
	CodeSalesRevenue       = "4100"
	CodeCOGS               = "5100"
	CodeOperatingExpenses  = "5200"
	CodeSalariesExpense    = "5300"
	CodeDepreciationExp    = "5400"
)
