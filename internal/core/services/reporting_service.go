package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
)

// reportingService builds financial reports by aggregating posted journal
// lines. Cached account balances are never consulted here: a report computed
// from the lines stays correct even when a cache has drifted.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// accountIndex loads the full chart keyed by code for report classification.
func (s *reportingService) accountIndex(ctx context.Context) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	index := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		index[acc.Code] = acc
	}
	return index, nil
}

// TrialBalance generates a trial balance report as of a specific date.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	logger := s.GetLogger(ctx)

	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	rows, err := s.reportingRepo.SumDebitsCreditsAsOf(ctx, asOf)
	if err != nil {
		logger.Error("Failed to aggregate trial balance", "error", err)
		return nil, fmt.Errorf("failed to generate trial balance: %w", err)
	}

	logger.Info("Trial balance generated", "rows", len(rows), "as_of", asOf)
	return rows, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period.
// Expense accounts flagged cost-of-sales feed gross profit; the rest are
// operating expenses.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	logger := s.GetLogger(ctx)

	activity, err := s.reportingRepo.SumActivityInRange(ctx, from, to)
	if err != nil {
		logger.Error("Failed to aggregate P&L activity", "error", err)
		return nil, fmt.Errorf("failed to generate profit and loss: %w", err)
	}

	index, err := s.accountIndex(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitAndLossReport{
		From:              from,
		To:                to,
		Revenue:           []domain.AccountAmount{},
		CostOfSales:       []domain.AccountAmount{},
		OperatingExpenses: []domain.AccountAmount{},
	}

	for _, row := range activity {
		acc, found := index[row.AccountCode]
		if !found {
			logger.Warn("Posted activity references unknown account", "account_code", row.AccountCode)
			continue
		}
		switch acc.Type {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, row)
			report.TotalRevenue += row.NetAmount
		case domain.ExpenseAccount:
			if acc.CostOfSales {
				report.CostOfSales = append(report.CostOfSales, row)
				report.TotalCostOfSales += row.NetAmount
			} else {
				report.OperatingExpenses = append(report.OperatingExpenses, row)
				report.TotalOperating += row.NetAmount
			}
		}
	}

	report.GrossProfit = report.TotalRevenue - report.TotalCostOfSales
	report.NetIncome = report.GrossProfit - report.TotalOperating

	logger.Info("Profit and loss generated", "net_income", report.NetIncome, "from", from, "to", to)
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date. The
// net income accumulated in revenue/expense accounts is folded into equity as
// retained earnings so that the accounting equation holds.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	logger := s.GetLogger(ctx)

	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	balances, err := s.reportingRepo.SumBalancesAsOf(ctx, asOf)
	if err != nil {
		logger.Error("Failed to aggregate balance sheet", "error", err)
		return nil, fmt.Errorf("failed to generate balance sheet: %w", err)
	}

	index, err := s.accountIndex(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:                  asOf,
		CurrentAssets:         []domain.AccountAmount{},
		NonCurrentAssets:      []domain.AccountAmount{},
		CurrentLiabilities:    []domain.AccountAmount{},
		NonCurrentLiabilities: []domain.AccountAmount{},
		Equity:                []domain.AccountAmount{},
	}

	for _, row := range balances {
		acc, found := index[row.AccountCode]
		if !found {
			logger.Warn("Posted balance references unknown account", "account_code", row.AccountCode)
			continue
		}
		switch acc.Type {
		case domain.Asset:
			if acc.IsCurrent {
				report.CurrentAssets = append(report.CurrentAssets, row)
			} else {
				report.NonCurrentAssets = append(report.NonCurrentAssets, row)
			}
			report.TotalAssets += row.NetAmount
		case domain.Liability:
			if acc.IsCurrent {
				report.CurrentLiabilities = append(report.CurrentLiabilities, row)
			} else {
				report.NonCurrentLiabilities = append(report.NonCurrentLiabilities, row)
			}
			report.TotalLiabilities += row.NetAmount
		case domain.Equity:
			report.Equity = append(report.Equity, row)
			report.TotalEquity += row.NetAmount
		case domain.Revenue:
			report.RetainedEarnings += row.NetAmount
		case domain.ExpenseAccount:
			report.RetainedEarnings -= row.NetAmount
		}
	}

	report.TotalEquity += report.RetainedEarnings

	// Allow a single minor unit of rounding slack
	diff := report.TotalAssets - report.TotalLiabilities - report.TotalEquity
	report.Balanced = diff >= -1 && diff <= 1

	logger.Info("Balance sheet generated", "total_assets", report.TotalAssets, "balanced", report.Balanced, "as_of", asOf)
	return report, nil
}

// AccountBalances returns per-account signed balances recomputed from posted
// lines as of a specific date.
func (s *reportingService) AccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return s.reportingRepo.SumBalancesAsOf(ctx, asOf)
}
