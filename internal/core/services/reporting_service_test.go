package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	service           portssvc.ReportingService
	chart             []domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockAccountRepo)

	suite.chart = []domain.Account{
		{Code: "1110", Name: "Bank", Type: domain.Asset, IsCurrent: true, IsActive: true},
		{Code: "1510", Name: "Fixed Assets", Type: domain.Asset, IsCurrent: false, IsActive: true},
		{Code: "2100", Name: "Accounts Payable", Type: domain.Liability, IsCurrent: true, IsActive: true},
		{Code: "3100", Name: "Owner's Equity", Type: domain.Equity, IsActive: true},
		{Code: "4100", Name: "Sales Revenue", Type: domain.Revenue, IsActive: true},
		{Code: "5100", Name: "Cost of Goods Sold", Type: domain.ExpenseAccount, CostOfSales: true, IsActive: true},
		{Code: "5200", Name: "Operating Expenses", Type: domain.ExpenseAccount, IsActive: true},
	}
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	activity := []domain.AccountAmount{
		{AccountCode: "4100", Name: "Sales Revenue", NetAmount: 800000},
		{AccountCode: "5100", Name: "Cost of Goods Sold", NetAmount: 500000},
		{AccountCode: "5200", Name: "Operating Expenses", NetAmount: 100000},
	}
	suite.mockReportingRepo.On("SumActivityInRange", ctx, from, to).Return(activity, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(suite.chart, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(int64(800000), report.TotalRevenue)
	suite.Equal(int64(500000), report.TotalCostOfSales)
	suite.Equal(int64(300000), report.GrossProfit)
	suite.Equal(int64(100000), report.TotalOperating)
	suite.Equal(int64(200000), report.NetIncome)
	suite.Len(report.Revenue, 1)
	suite.Len(report.CostOfSales, 1)
	suite.Len(report.OperatingExpenses, 1)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_SkipsUnknownAccounts() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	activity := []domain.AccountAmount{
		{AccountCode: "4100", NetAmount: 100000},
		{AccountCode: "9999", NetAmount: 50000},
	}
	suite.mockReportingRepo.On("SumActivityInRange", ctx, from, to).Return(activity, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(suite.chart, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(int64(100000), report.TotalRevenue)
	suite.Len(report.Revenue, 1)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquationHolds() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// Assets 6,700,000 = Liabilities 500,000 + Equity 6,000,000
	//                  + Retained earnings (800,000 revenue - 600,000 expenses)
	balances := []domain.AccountAmount{
		{AccountCode: "1110", Name: "Bank", NetAmount: 700000},
		{AccountCode: "1510", Name: "Fixed Assets", NetAmount: 6000000},
		{AccountCode: "2100", Name: "Accounts Payable", NetAmount: 500000},
		{AccountCode: "3100", Name: "Owner's Equity", NetAmount: 6000000},
		{AccountCode: "4100", Name: "Sales Revenue", NetAmount: 800000},
		{AccountCode: "5200", Name: "Operating Expenses", NetAmount: 600000},
	}
	suite.mockReportingRepo.On("SumBalancesAsOf", ctx, asOf).Return(balances, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(suite.chart, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal(int64(6700000), report.TotalAssets)
	suite.Equal(int64(500000), report.TotalLiabilities)
	suite.Equal(int64(200000), report.RetainedEarnings)
	suite.Equal(int64(6200000), report.TotalEquity)
	suite.True(report.Balanced)
	suite.Len(report.CurrentAssets, 1)
	suite.Len(report.NonCurrentAssets, 1)
	suite.Len(report.CurrentLiabilities, 1)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_DetectsImbalance() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	// Assets without matching liabilities or equity
	balances := []domain.AccountAmount{
		{AccountCode: "1110", Name: "Bank", NetAmount: 700000},
	}
	suite.mockReportingRepo.On("SumBalancesAsOf", ctx, asOf).Return(balances, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(suite.chart, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.False(report.Balanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	rows := []domain.TrialBalanceRow{
		{AccountCode: "1110", AccountName: "Bank", AccountType: domain.Asset, Debit: 700000},
		{AccountCode: "4100", AccountName: "Sales Revenue", AccountType: domain.Revenue, Credit: 700000},
	}
	suite.mockReportingRepo.On("SumDebitsCreditsAsOf", ctx, asOf).Return(rows, nil).Once()

	result, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_DefaultsAsOfToNow() {
	ctx := context.Background()

	suite.mockReportingRepo.On("SumDebitsCreditsAsOf", ctx, mock.MatchedBy(func(asOf time.Time) bool {
		return !asOf.IsZero()
	})).Return([]domain.TrialBalanceRow{}, nil).Once()

	_, err := suite.service.TrialBalance(ctx, time.Time{})

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestAccountBalances() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	balances := []domain.AccountAmount{
		{AccountCode: "1110", Name: "Bank", NetAmount: 700000},
	}
	suite.mockReportingRepo.On("SumBalancesAsOf", ctx, asOf).Return(balances, nil).Once()

	result, err := suite.service.AccountBalances(ctx, asOf)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal(int64(700000), result[0].NetAmount)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
