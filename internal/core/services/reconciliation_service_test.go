package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReconciliationRepository ---
type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) FindMissingPostings(ctx context.Context) ([]domain.MissingPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissingPosting), args.Error(1)
}

func (m *MockReconciliationRepository) FindOrphanEntries(ctx context.Context) ([]domain.OrphanEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrphanEntry), args.Error(1)
}

func (m *MockReconciliationRepository) FindUnbalancedEntries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReconciliationRepository) ComputeBalanceDrift(ctx context.Context) ([]domain.BalanceDrift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceDrift), args.Error(1)
}

// --- Test Suite Setup ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockReconciliationRepo *MockReconciliationRepository
	mockJournalRepo        *MockJournalRepository
	mockAccountRepo        *MockAccountRepository
	mockSubledgerRepo      *MockSubledgerRepository
	mockJournalSvc         *MockJournalService
	service                portssvc.ReconciliationService
	userID                 string
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockReconciliationRepo = new(MockReconciliationRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSubledgerRepo = new(MockSubledgerRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewReconciliationService(
		suite.mockReconciliationRepo,
		suite.mockJournalRepo,
		suite.mockAccountRepo,
		suite.mockSubledgerRepo,
		suite.mockJournalSvc,
	)
	suite.userID = uuid.NewString()
}

func (suite *ReconciliationServiceTestSuite) expectCleanScan(ctx context.Context) {
	suite.mockReconciliationRepo.On("FindMissingPostings", ctx).Return([]domain.MissingPosting{}, nil).Once()
	suite.mockReconciliationRepo.On("FindOrphanEntries", ctx).Return([]domain.OrphanEntry{}, nil).Once()
	suite.mockReconciliationRepo.On("FindUnbalancedEntries", ctx).Return([]string{}, nil).Once()
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestScan_Clean() {
	ctx := context.Background()
	suite.expectCleanScan(ctx)
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return([]domain.BalanceDrift{}, nil).Once()

	report, err := suite.service.Scan(ctx)

	suite.Require().NoError(err)
	suite.True(report.Clean())
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestScan_ReportsFindings() {
	ctx := context.Background()

	missing := []domain.MissingPosting{
		{Kind: domain.DocVendorBill, DocumentID: 42, TransactionID: "bill-42", Amount: 500000},
	}
	orphans := []domain.OrphanEntry{
		{EntryID: uuid.NewString(), TransactionID: "exp-99", Amount: 15000},
	}
	unbalanced := []string{uuid.NewString()}
	drifts := []domain.BalanceDrift{
		{AccountCode: "1110", CachedBalance: 100000, ComputedBalance: 90000},
	}

	suite.mockReconciliationRepo.On("FindMissingPostings", ctx).Return(missing, nil).Once()
	suite.mockReconciliationRepo.On("FindOrphanEntries", ctx).Return(orphans, nil).Once()
	suite.mockReconciliationRepo.On("FindUnbalancedEntries", ctx).Return(unbalanced, nil).Once()
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return(drifts, nil).Once()

	report, err := suite.service.Scan(ctx)

	suite.Require().NoError(err)
	suite.False(report.Clean())
	suite.Len(report.MissingPostings, 1)
	suite.Len(report.OrphanEntries, 1)
	suite.Len(report.UnbalancedEntries, 1)
	suite.Len(report.BalanceDrifts, 1)
}

func (suite *ReconciliationServiceTestSuite) TestRepair_RepostsMissingBill() {
	ctx := context.Background()

	missing := []domain.MissingPosting{
		{Kind: domain.DocVendorBill, DocumentID: 42, TransactionID: "bill-42", Amount: 500000},
	}
	suite.mockReconciliationRepo.On("FindMissingPostings", ctx).Return(missing, nil).Once()
	suite.mockReconciliationRepo.On("FindOrphanEntries", ctx).Return([]domain.OrphanEntry{}, nil).Once()
	suite.mockReconciliationRepo.On("FindUnbalancedEntries", ctx).Return([]string{}, nil).Once()
	// Drift is recomputed after documents are reposted
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return([]domain.BalanceDrift{}, nil).Twice()

	bill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", BillDate: time.Now(), Amount: 500000}
	suite.mockSubledgerRepo.On("FindBillByID", ctx, int64(42)).Return(bill, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("bill-42", *entryReq.TransactionID)
			suite.Require().Len(entryReq.Lines, 2)
			suite.Equal(domain.CodeInventory, entryReq.Lines[0].AccountCode)
			suite.Equal(int64(500000), money.ToMinor(entryReq.Lines[0].Debit))
			suite.Equal(domain.CodeAccountsPayable, entryReq.Lines[1].AccountCode)
			suite.Equal(int64(500000), money.ToMinor(entryReq.Lines[1].Credit))
		}).Return(&domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}, nil).Once()

	summary, err := suite.service.Repair(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.PostingsCreated)
	suite.Equal(0, summary.EntriesDeleted)
	suite.Equal(0, summary.BalancesRepaired)
	suite.mockJournalSvc.AssertExpectations(suite.T())
	suite.mockReconciliationRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestRepair_DeletesOrphanEntry() {
	ctx := context.Background()
	orphanID := uuid.NewString()

	suite.mockReconciliationRepo.On("FindMissingPostings", ctx).Return([]domain.MissingPosting{}, nil).Once()
	suite.mockReconciliationRepo.On("FindOrphanEntries", ctx).Return([]domain.OrphanEntry{
		{EntryID: orphanID, TransactionID: "bill-404", Amount: 500000},
	}, nil).Once()
	suite.mockReconciliationRepo.On("FindUnbalancedEntries", ctx).Return([]string{}, nil).Once()
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return([]domain.BalanceDrift{}, nil).Twice()

	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: orphanID, AccountCode: "1310", Debit: 500000},
		{LineID: uuid.NewString(), EntryID: orphanID, AccountCode: "2100", Credit: 500000},
	}
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, orphanID).Return(lines, nil).Once()
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	accounts := map[string]domain.Account{
		"1310": {Code: "1310", Type: domain.Asset, IsActive: true},
		"2100": {Code: "2100", Type: domain.Liability, IsActive: true},
	}
	suite.mockAccountRepo.On("FindAccountsByCodesForUpdate", ctx, mock.Anything, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()

	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, mock.Anything, mock.AnythingOfType("map[string]int64"), suite.userID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			changes := args.Get(2).(map[string]int64)
			// The orphan grew both balances by 500000, so the delete backs
			// both out
			suite.Equal(int64(-500000), changes["1310"])
			suite.Equal(int64(-500000), changes["2100"])
		}).Return(nil).Once()

	suite.mockJournalRepo.On("DeleteEntryInTx", ctx, mock.Anything, orphanID).Return(nil).Once()
	suite.mockJournalRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	summary, err := suite.service.Repair(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, summary.PostingsCreated)
	suite.Equal(1, summary.EntriesDeleted)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestRepair_FixesBalanceDrift() {
	ctx := context.Background()

	suite.expectCleanScan(ctx)
	drifts := []domain.BalanceDrift{
		{AccountCode: "1110", CachedBalance: 100000, ComputedBalance: 90000},
	}
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return(drifts, nil).Twice()

	suite.mockAccountRepo.On("SetAccountBalance", ctx, "1110", int64(90000), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	summary, err := suite.service.Repair(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.BalancesRepaired)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestRebuildBalances() {
	ctx := context.Background()

	drifts := []domain.BalanceDrift{
		{AccountCode: "1110", CachedBalance: 100000, ComputedBalance: 90000},
		{AccountCode: "2100", CachedBalance: 0, ComputedBalance: 500000},
	}
	suite.mockReconciliationRepo.On("ComputeBalanceDrift", ctx).Return(drifts, nil).Once()
	suite.mockAccountRepo.On("SetAccountBalance", ctx, "1110", int64(90000), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAccountRepo.On("SetAccountBalance", ctx, "2100", int64(500000), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	rebuilt, err := suite.service.RebuildBalances(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, rebuilt)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
