package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SubledgerRepository ---
type MockSubledgerRepository struct {
	mock.Mock
}

var _ portsrepo.SubledgerRepositoryFacade = (*MockSubledgerRepository)(nil)

func (m *MockSubledgerRepository) FindBillByID(ctx context.Context, billID int64) (*domain.VendorBill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorBill), args.Error(1)
}

func (m *MockSubledgerRepository) ListBills(ctx context.Context, unpaidOnly bool) ([]domain.VendorBill, error) {
	args := m.Called(ctx, unpaidOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VendorBill), args.Error(1)
}

func (m *MockSubledgerRepository) FindPaymentsByBillID(ctx context.Context, billID int64) ([]domain.BillPayment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillPayment), args.Error(1)
}

func (m *MockSubledgerRepository) SaveBill(ctx context.Context, bill domain.VendorBill) (*domain.VendorBill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorBill), args.Error(1)
}

func (m *MockSubledgerRepository) SavePayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillPayment), args.Error(1)
}

func (m *MockSubledgerRepository) MarkBillPaid(ctx context.Context, billID int64, userID string, now time.Time) error {
	args := m.Called(ctx, billID, userID, now)
	return args.Error(0)
}

func (m *MockSubledgerRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.CustomerInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerInvoice), args.Error(1)
}

func (m *MockSubledgerRepository) ListInvoices(ctx context.Context, unsettledOnly bool) ([]domain.CustomerInvoice, error) {
	args := m.Called(ctx, unsettledOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerInvoice), args.Error(1)
}

func (m *MockSubledgerRepository) FindReceiptsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceReceipt, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceReceipt), args.Error(1)
}

func (m *MockSubledgerRepository) SaveInvoice(ctx context.Context, invoice domain.CustomerInvoice) (*domain.CustomerInvoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerInvoice), args.Error(1)
}

func (m *MockSubledgerRepository) SaveReceipt(ctx context.Context, receipt domain.InvoiceReceipt) (*domain.InvoiceReceipt, error) {
	args := m.Called(ctx, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceReceipt), args.Error(1)
}

func (m *MockSubledgerRepository) MarkInvoiceSettled(ctx context.Context, invoiceID int64, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, userID, now)
	return args.Error(0)
}

func (m *MockSubledgerRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockSubledgerRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockSubledgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockSubledgerRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.FixedAsset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockSubledgerRepository) ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FixedAsset), args.Error(1)
}

func (m *MockSubledgerRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) (*domain.FixedAsset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FixedAsset), args.Error(1)
}

func (m *MockSubledgerRepository) AddAccumulatedDepreciation(ctx context.Context, assetID int64, amount int64, period string, userID string, now time.Time) (bool, error) {
	args := m.Called(ctx, assetID, amount, period, userID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubledgerRepository) FindRunByID(ctx context.Context, runID int64) (*domain.PayrollRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockSubledgerRepository) FindRunByPeriod(ctx context.Context, period string) (*domain.PayrollRun, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockSubledgerRepository) ListRuns(ctx context.Context) ([]domain.PayrollRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollRun), args.Error(1)
}

func (m *MockSubledgerRepository) SaveRun(ctx context.Context, run domain.PayrollRun) (*domain.PayrollRun, error) {
	args := m.Called(ctx, run)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollRun), args.Error(1)
}

func (m *MockSubledgerRepository) MarkRunPaid(ctx context.Context, runID int64, userID string, now time.Time) error {
	args := m.Called(ctx, runID, userID, now)
	return args.Error(0)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockJournalService) GetGeneralLedger(ctx context.Context, accountCode string, params dto.LedgerParams) (*dto.LedgerResponse, error) {
	args := m.Called(ctx, accountCode, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerResponse), args.Error(1)
}

// lineAmounts collapses an entry request into accountCode -> (debit, credit)
// in minor units for assertions.
func lineAmounts(req dto.CreateEntryRequest) (map[string]int64, map[string]int64) {
	debits := make(map[string]int64)
	credits := make(map[string]int64)
	for _, line := range req.Lines {
		debits[line.AccountCode] += money.ToMinor(line.Debit)
		credits[line.AccountCode] += money.ToMinor(line.Credit)
	}
	return debits, credits
}

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockSubledgerRepo *MockSubledgerRepository
	mockJournalSvc    *MockJournalService
	service           portssvc.PostingSvcFacade
	userID            string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockSubledgerRepo = new(MockSubledgerRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewPostingService(suite.mockSubledgerRepo, suite.mockJournalSvc)
	suite.userID = uuid.NewString()
}

func (suite *PostingServiceTestSuite) postedEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		EntryType: domain.EntryTransaction,
		Status:    domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC().Add(time.Second),
		},
	}
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestRecordBill_Success() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		VendorName: "Acme Supplies",
		BillDate:   time.Now(),
		Amount:     decimal.NewFromInt(5000),
	}

	savedBill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", Amount: 500000}
	suite.mockSubledgerRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.VendorBill")).Return(savedBill, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("bill-42", *entryReq.TransactionID)
			suite.Equal(domain.EntryTransaction, entryReq.EntryType)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(500000), debits[domain.CodeInventory])
			suite.Equal(int64(500000), credits[domain.CodeAccountsPayable])
		}).Return(suite.postedEntry(), nil).Once()

	bill, entry, err := suite.service.RecordBill(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(42), bill.BillID)
	suite.NotNil(entry)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordBill_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		VendorName: "Acme Supplies",
		BillDate:   time.Now(),
		Amount:     decimal.Zero,
	}

	bill, entry, err := suite.service.RecordBill(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAmountNotPositive)
	suite.Nil(bill)
	suite.Nil(entry)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPayBill_FinalPaymentMarksPaid() {
	ctx := context.Background()
	bill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", Amount: 500000}
	priorPayments := []domain.BillPayment{{PaymentID: 1, BillID: 42, Amount: 200000}}

	suite.mockSubledgerRepo.On("FindBillByID", ctx, int64(42)).Return(bill, nil).Once()
	suite.mockSubledgerRepo.On("FindPaymentsByBillID", ctx, int64(42)).Return(priorPayments, nil).Once()

	savedPayment := &domain.BillPayment{PaymentID: 2, BillID: 42, Amount: 300000}
	suite.mockSubledgerRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BillPayment")).Return(savedPayment, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("pay-2", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(300000), debits[domain.CodeAccountsPayable])
			suite.Equal(int64(300000), credits[domain.CodeBank])
		}).Return(suite.postedEntry(), nil).Once()

	suite.mockSubledgerRepo.On("MarkBillPaid", ctx, int64(42), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	payment, entry, err := suite.service.PayBill(ctx, 42, dto.PayBillRequest{
		PaymentDate: time.Now(),
		Amount:      decimal.NewFromInt(3000),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), payment.PaymentID)
	suite.NotNil(entry)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPayBill_PartialPaymentDoesNotMarkPaid() {
	ctx := context.Background()
	bill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", Amount: 500000}

	suite.mockSubledgerRepo.On("FindBillByID", ctx, int64(42)).Return(bill, nil).Once()
	suite.mockSubledgerRepo.On("FindPaymentsByBillID", ctx, int64(42)).Return([]domain.BillPayment{}, nil).Once()

	savedPayment := &domain.BillPayment{PaymentID: 1, BillID: 42, Amount: 200000}
	suite.mockSubledgerRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.BillPayment")).Return(savedPayment, nil).Once()
	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).Return(suite.postedEntry(), nil).Once()

	_, _, err := suite.service.PayBill(ctx, 42, dto.PayBillRequest{
		PaymentDate: time.Now(),
		Amount:      decimal.NewFromInt(2000),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "MarkBillPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPayBill_Overpayment() {
	ctx := context.Background()
	bill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", Amount: 500000}
	priorPayments := []domain.BillPayment{{PaymentID: 1, BillID: 42, Amount: 400000}}

	suite.mockSubledgerRepo.On("FindBillByID", ctx, int64(42)).Return(bill, nil).Once()
	suite.mockSubledgerRepo.On("FindPaymentsByBillID", ctx, int64(42)).Return(priorPayments, nil).Once()

	payment, entry, err := suite.service.PayBill(ctx, 42, dto.PayBillRequest{
		PaymentDate: time.Now(),
		Amount:      decimal.NewFromInt(2000),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrOverpayment)
	suite.Nil(payment)
	suite.Nil(entry)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPayBill_AlreadyPaid() {
	ctx := context.Background()
	bill := &domain.VendorBill{BillID: 42, VendorName: "Acme Supplies", Amount: 500000, IsPaid: true}

	suite.mockSubledgerRepo.On("FindBillByID", ctx, int64(42)).Return(bill, nil).Once()

	_, _, err := suite.service.PayBill(ctx, 42, dto.PayBillRequest{
		PaymentDate: time.Now(),
		Amount:      decimal.NewFromInt(1000),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPaid)
}

func (suite *PostingServiceTestSuite) TestRecordInvoice_WithCostOfGoods() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerName: "Globex",
		InvoiceDate:  time.Now(),
		Amount:       decimal.NewFromInt(8000),
		CostOfGoods:  decimal.NewFromInt(5000),
	}

	savedInvoice := &domain.CustomerInvoice{InvoiceID: 7, CustomerName: "Globex", Amount: 800000, CostOfGoods: 500000}
	suite.mockSubledgerRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.CustomerInvoice")).Return(savedInvoice, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("inv-7", *entryReq.TransactionID)
			suite.Require().Len(entryReq.Lines, 4)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(800000), debits[domain.CodeAccountsReceivable])
			suite.Equal(int64(800000), credits[domain.CodeSalesRevenue])
			suite.Equal(int64(500000), debits[domain.CodeCOGS])
			suite.Equal(int64(500000), credits[domain.CodeInventory])
		}).Return(suite.postedEntry(), nil).Once()

	invoice, entry, err := suite.service.RecordInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(7), invoice.InvoiceID)
	suite.NotNil(entry)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordInvoice_WithoutCostOfGoods() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerName: "Globex",
		InvoiceDate:  time.Now(),
		Amount:       decimal.NewFromInt(8000),
	}

	savedInvoice := &domain.CustomerInvoice{InvoiceID: 8, CustomerName: "Globex", Amount: 800000}
	suite.mockSubledgerRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.CustomerInvoice")).Return(savedInvoice, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().Len(entryReq.Lines, 2)
		}).Return(suite.postedEntry(), nil).Once()

	_, _, err := suite.service.RecordInvoice(ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReceiveInvoice_FinalReceiptMarksSettled() {
	ctx := context.Background()
	invoice := &domain.CustomerInvoice{InvoiceID: 7, CustomerName: "Globex", Amount: 800000}

	suite.mockSubledgerRepo.On("FindInvoiceByID", ctx, int64(7)).Return(invoice, nil).Once()
	suite.mockSubledgerRepo.On("FindReceiptsByInvoiceID", ctx, int64(7)).Return([]domain.InvoiceReceipt{}, nil).Once()

	savedReceipt := &domain.InvoiceReceipt{ReceiptID: 3, InvoiceID: 7, Amount: 800000}
	suite.mockSubledgerRepo.On("SaveReceipt", ctx, mock.AnythingOfType("domain.InvoiceReceipt")).Return(savedReceipt, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("rcv-3", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(800000), debits[domain.CodeBank])
			suite.Equal(int64(800000), credits[domain.CodeAccountsReceivable])
		}).Return(suite.postedEntry(), nil).Once()

	suite.mockSubledgerRepo.On("MarkInvoiceSettled", ctx, int64(7), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	receipt, entry, err := suite.service.ReceiveInvoice(ctx, 7, dto.ReceiveInvoiceRequest{
		ReceiptDate: time.Now(),
		Amount:      decimal.NewFromInt(8000),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), receipt.ReceiptID)
	suite.NotNil(entry)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordExpense_PaidFromCash() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:     "Office supplies",
		ExpenseDate:  time.Now(),
		Amount:       decimal.NewFromInt(150),
		PaidFromCash: true,
	}

	savedExpense := &domain.Expense{ExpenseID: 9, Category: "Office supplies", Amount: 15000, PaidFromCash: true}
	suite.mockSubledgerRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(savedExpense, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("exp-9", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(15000), debits[domain.CodeOperatingExpenses])
			suite.Equal(int64(15000), credits[domain.CodeCash])
			suite.Equal(int64(0), credits[domain.CodeBank])
		}).Return(suite.postedEntry(), nil).Once()

	_, _, err := suite.service.RecordExpense(ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordExpense_PaidFromBank() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    "Rent",
		ExpenseDate: time.Now(),
		Amount:      decimal.NewFromInt(2500),
	}

	savedExpense := &domain.Expense{ExpenseID: 10, Category: "Rent", Amount: 250000}
	suite.mockSubledgerRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(savedExpense, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			_, credits := lineAmounts(entryReq)
			suite.Equal(int64(250000), credits[domain.CodeBank])
		}).Return(suite.postedEntry(), nil).Once()

	_, _, err := suite.service.RecordExpense(ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRegisterAsset_Success() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:             "Delivery van",
		AcquiredDate:     time.Now(),
		Cost:             decimal.NewFromInt(60000),
		UsefulLifeMonths: 60,
	}

	savedAsset := &domain.FixedAsset{AssetID: 5, Name: "Delivery van", Cost: 6000000, UsefulLifeMonths: 60}
	suite.mockSubledgerRepo.On("SaveAsset", ctx, mock.AnythingOfType("domain.FixedAsset")).Return(savedAsset, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("asset-5", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(6000000), debits[domain.CodeFixedAssets])
			suite.Equal(int64(6000000), credits[domain.CodeBank])
		}).Return(suite.postedEntry(), nil).Once()

	asset, entry, err := suite.service.RegisterAsset(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(5), asset.AssetID)
	suite.NotNil(entry)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRegisterAsset_SalvageExceedsCost() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:             "Delivery van",
		AcquiredDate:     time.Now(),
		Cost:             decimal.NewFromInt(1000),
		SalvageValue:     decimal.NewFromInt(2000),
		UsefulLifeMonths: 60,
	}

	asset, entry, err := suite.service.RegisterAsset(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.Nil(entry)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRunMonthlyDepreciation_ChargesActiveAssets() {
	ctx := context.Background()
	assets := []domain.FixedAsset{
		{AssetID: 5, Name: "Delivery van", Cost: 6000000, UsefulLifeMonths: 60},
	}

	suite.mockSubledgerRepo.On("ListActiveAssets", ctx).Return(assets, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("dep-5-2025-03", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(100000), debits[domain.CodeDepreciationExp])
			suite.Equal(int64(100000), credits[domain.CodeAccumDepreciation])
		}).Return(suite.postedEntry(), nil).Once()

	suite.mockSubledgerRepo.On("AddAccumulatedDepreciation", ctx, int64(5), int64(100000), "2025-03", suite.userID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	result, err := suite.service.RunMonthlyDepreciation(ctx, "2025-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, result.AssetsCharged)
	suite.Equal(0, result.AssetsSkipped)
	suite.True(decimal.NewFromInt(1000).Equal(result.TotalCharge))
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRunMonthlyDepreciation_SkipsFullyDepreciated() {
	ctx := context.Background()
	assets := []domain.FixedAsset{
		{AssetID: 6, Name: "Old laptop", Cost: 120000, UsefulLifeMonths: 12, AccumulatedDepreciation: 120000},
	}

	suite.mockSubledgerRepo.On("ListActiveAssets", ctx).Return(assets, nil).Once()

	result, err := suite.service.RunMonthlyDepreciation(ctx, "2025-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, result.AssetsCharged)
	suite.Equal(1, result.AssetsSkipped)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRunMonthlyDepreciation_SkipsAlreadyCharged() {
	ctx := context.Background()
	assets := []domain.FixedAsset{
		{AssetID: 5, Name: "Delivery van", Cost: 6000000, UsefulLifeMonths: 60},
	}

	suite.mockSubledgerRepo.On("ListActiveAssets", ctx).Return(assets, nil).Once()

	// An entry created in the past means the period was charged by an
	// earlier run.
	existingEntry := &domain.JournalEntry{
		EntryID: uuid.NewString(),
		Status:  domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		},
	}
	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).Return(existingEntry, nil).Once()

	// The period guard rejects the replayed accumulation update.
	suite.mockSubledgerRepo.On("AddAccumulatedDepreciation", ctx, int64(5), int64(100000), "2025-03", suite.userID, mock.AnythingOfType("time.Time")).Return(false, nil).Once()

	result, err := suite.service.RunMonthlyDepreciation(ctx, "2025-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, result.AssetsCharged)
	suite.Equal(1, result.AssetsSkipped)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRunMonthlyDepreciation_RecoversMissedAccumulation() {
	ctx := context.Background()
	assets := []domain.FixedAsset{
		{AssetID: 5, Name: "Delivery van", Cost: 6000000, UsefulLifeMonths: 60},
	}

	suite.mockSubledgerRepo.On("ListActiveAssets", ctx).Return(assets, nil).Once()

	// The entry exists from an earlier run that crashed before updating the
	// asset, so the accumulation is still owed.
	existingEntry := &domain.JournalEntry{
		EntryID: uuid.NewString(),
		Status:  domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC().Add(-time.Hour),
		},
	}
	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).Return(existingEntry, nil).Once()
	suite.mockSubledgerRepo.On("AddAccumulatedDepreciation", ctx, int64(5), int64(100000), "2025-03", suite.userID, mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	result, err := suite.service.RunMonthlyDepreciation(ctx, "2025-03", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, result.AssetsCharged)
	suite.Equal(0, result.AssetsSkipped)
	suite.Contains(result.EntryIDs, existingEntry.EntryID)
	suite.True(decimal.NewFromInt(1000).Equal(result.TotalCharge))
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRunMonthlyDepreciation_InvalidPeriod() {
	ctx := context.Background()

	result, err := suite.service.RunMonthlyDepreciation(ctx, "March 2025", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidPeriod)
	suite.Nil(result)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "ListActiveAssets", mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPayrollRun_Success() {
	ctx := context.Background()
	req := dto.CreatePayrollRunRequest{
		Period:      "2025-03",
		RunDate:     time.Now(),
		GrossAmount: decimal.NewFromInt(10000),
		TaxAmount:   decimal.NewFromInt(2000),
	}

	suite.mockSubledgerRepo.On("FindRunByPeriod", ctx, "2025-03").Return(nil, apperrors.ErrNotFound).Once()

	savedRun := &domain.PayrollRun{RunID: 11, Period: "2025-03", GrossAmount: 1000000, TaxAmount: 200000}
	suite.mockSubledgerRepo.On("SaveRun", ctx, mock.AnythingOfType("domain.PayrollRun")).Return(savedRun, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("prl-11", *entryReq.TransactionID)
			suite.Require().Len(entryReq.Lines, 3)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(1000000), debits[domain.CodeSalariesExpense])
			suite.Equal(int64(800000), credits[domain.CodeSalariesPayable])
			suite.Equal(int64(200000), credits[domain.CodeTaxPayable])
		}).Return(suite.postedEntry(), nil).Once()

	run, entry, err := suite.service.RecordPayrollRun(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(11), run.RunID)
	suite.NotNil(entry)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordPayrollRun_NoTaxOmitsTaxLine() {
	ctx := context.Background()
	req := dto.CreatePayrollRunRequest{
		Period:      "2025-04",
		RunDate:     time.Now(),
		GrossAmount: decimal.NewFromInt(10000),
	}

	suite.mockSubledgerRepo.On("FindRunByPeriod", ctx, "2025-04").Return(nil, apperrors.ErrNotFound).Once()

	savedRun := &domain.PayrollRun{RunID: 12, Period: "2025-04", GrossAmount: 1000000}
	suite.mockSubledgerRepo.On("SaveRun", ctx, mock.AnythingOfType("domain.PayrollRun")).Return(savedRun, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().Len(entryReq.Lines, 2)
		}).Return(suite.postedEntry(), nil).Once()

	_, _, err := suite.service.RecordPayrollRun(ctx, req, suite.userID)
	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestRecordPayrollRun_DuplicatePeriod() {
	ctx := context.Background()
	req := dto.CreatePayrollRunRequest{
		Period:      "2025-03",
		RunDate:     time.Now(),
		GrossAmount: decimal.NewFromInt(10000),
	}

	existing := &domain.PayrollRun{RunID: 11, Period: "2025-03"}
	suite.mockSubledgerRepo.On("FindRunByPeriod", ctx, "2025-03").Return(existing, nil).Once()

	run, entry, err := suite.service.RecordPayrollRun(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(run)
	suite.Nil(entry)
	suite.mockSubledgerRepo.AssertNotCalled(suite.T(), "SaveRun", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestRecordPayrollRun_TaxNotBelowGross() {
	ctx := context.Background()
	req := dto.CreatePayrollRunRequest{
		Period:      "2025-03",
		RunDate:     time.Now(),
		GrossAmount: decimal.NewFromInt(1000),
		TaxAmount:   decimal.NewFromInt(1000),
	}

	run, entry, err := suite.service.RecordPayrollRun(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(run)
	suite.Nil(entry)
}

func (suite *PostingServiceTestSuite) TestPayPayrollRun_Success() {
	ctx := context.Background()
	run := &domain.PayrollRun{RunID: 11, Period: "2025-03", GrossAmount: 1000000, TaxAmount: 200000}

	suite.mockSubledgerRepo.On("FindRunByID", ctx, int64(11)).Return(run, nil).Once()

	suite.mockJournalSvc.On("CreateEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) {
			entryReq := args.Get(1).(dto.CreateEntryRequest)
			suite.Require().NotNil(entryReq.TransactionID)
			suite.Equal("prl-pay-11", *entryReq.TransactionID)

			debits, credits := lineAmounts(entryReq)
			suite.Equal(int64(800000), debits[domain.CodeSalariesPayable])
			suite.Equal(int64(800000), credits[domain.CodeBank])
		}).Return(suite.postedEntry(), nil).Once()

	suite.mockSubledgerRepo.On("MarkRunPaid", ctx, int64(11), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	paidRun, entry, err := suite.service.PayPayrollRun(ctx, 11, suite.userID)

	suite.Require().NoError(err)
	suite.True(paidRun.IsPaid)
	suite.NotNil(entry)
	suite.mockSubledgerRepo.AssertExpectations(suite.T())
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPayPayrollRun_AlreadyPaid() {
	ctx := context.Background()
	run := &domain.PayrollRun{RunID: 11, Period: "2025-03", GrossAmount: 1000000, IsPaid: true}

	suite.mockSubledgerRepo.On("FindRunByID", ctx, int64(11)).Return(run, nil).Once()

	_, _, err := suite.service.PayPayrollRun(ctx, 11, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyPaid)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
