package dto

import (
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// AsOfParams defines query parameters for point-in-time reports.
type AsOfParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02"`
}

// PeriodParams defines query parameters for period reports.
type PeriodParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// AccountAmountResponse is one account line in a financial report.
type AccountAmountResponse struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToAccountAmountResponses converts domain report lines to DTOs.
func ToAccountAmountResponses(rows []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(rows))
	for i, row := range rows {
		res[i] = AccountAmountResponse{
			AccountCode: row.AccountCode,
			Name:        row.Name,
			Amount:      money.FromMinor(row.NetAmount),
		}
	}
	return res
}

// BalanceSheetResponse is the balance sheet as of a date.
type BalanceSheetResponse struct {
	AsOf                  time.Time               `json:"asOf"`
	CurrentAssets         []AccountAmountResponse `json:"currentAssets"`
	NonCurrentAssets      []AccountAmountResponse `json:"nonCurrentAssets"`
	CurrentLiabilities    []AccountAmountResponse `json:"currentLiabilities"`
	NonCurrentLiabilities []AccountAmountResponse `json:"nonCurrentLiabilities"`
	Equity                []AccountAmountResponse `json:"equity"`
	RetainedEarnings      decimal.Decimal         `json:"retainedEarnings"`
	TotalAssets           decimal.Decimal         `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal         `json:"totalLiabilities"`
	TotalEquity           decimal.Decimal         `json:"totalEquity"`
	Balanced              bool                    `json:"balanced"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheetReport to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                  r.AsOf,
		CurrentAssets:         ToAccountAmountResponses(r.CurrentAssets),
		NonCurrentAssets:      ToAccountAmountResponses(r.NonCurrentAssets),
		CurrentLiabilities:    ToAccountAmountResponses(r.CurrentLiabilities),
		NonCurrentLiabilities: ToAccountAmountResponses(r.NonCurrentLiabilities),
		Equity:                ToAccountAmountResponses(r.Equity),
		RetainedEarnings:      money.FromMinor(r.RetainedEarnings),
		TotalAssets:           money.FromMinor(r.TotalAssets),
		TotalLiabilities:      money.FromMinor(r.TotalLiabilities),
		TotalEquity:           money.FromMinor(r.TotalEquity),
		Balanced:              r.Balanced,
	}
}

// ProfitAndLossResponse is the income statement over a period.
type ProfitAndLossResponse struct {
	From              time.Time               `json:"from"`
	To                time.Time               `json:"to"`
	Revenue           []AccountAmountResponse `json:"revenue"`
	CostOfSales       []AccountAmountResponse `json:"costOfSales"`
	OperatingExpenses []AccountAmountResponse `json:"operatingExpenses"`
	TotalRevenue      decimal.Decimal         `json:"totalRevenue"`
	TotalCostOfSales  decimal.Decimal         `json:"totalCostOfSales"`
	GrossProfit       decimal.Decimal         `json:"grossProfit"`
	TotalOperating    decimal.Decimal         `json:"totalOperatingExpenses"`
	NetIncome         decimal.Decimal         `json:"netIncome"`
}

// ToProfitAndLossResponse converts a domain.ProfitAndLossReport to its DTO.
func ToProfitAndLossResponse(r *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		From:              r.From,
		To:                r.To,
		Revenue:           ToAccountAmountResponses(r.Revenue),
		CostOfSales:       ToAccountAmountResponses(r.CostOfSales),
		OperatingExpenses: ToAccountAmountResponses(r.OperatingExpenses),
		TotalRevenue:      money.FromMinor(r.TotalRevenue),
		TotalCostOfSales:  money.FromMinor(r.TotalCostOfSales),
		GrossProfit:       money.FromMinor(r.GrossProfit),
		TotalOperating:    money.FromMinor(r.TotalOperating),
		NetIncome:         money.FromMinor(r.NetIncome),
	}
}

// TrialBalanceRowResponse is one row of the trial balance.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the trial balance as of a date.
type TrialBalanceResponse struct {
	AsOf         time.Time                 `json:"asOf"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
	Balanced     bool                      `json:"balanced"`
}

// ToTrialBalanceResponse converts trial balance rows to the report DTO.
func ToTrialBalanceResponse(asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	res := TrialBalanceResponse{
		AsOf: asOf,
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}
	var debits, credits int64
	for i, row := range rows {
		res.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       money.FromMinor(row.Debit),
			Credit:      money.FromMinor(row.Credit),
		}
		debits += row.Debit
		credits += row.Credit
	}
	res.TotalDebits = money.FromMinor(debits)
	res.TotalCredits = money.FromMinor(credits)
	res.Balanced = debits == credits
	return res
}
