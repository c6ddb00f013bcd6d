package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/bekzodm/erp-ledger/internal/utils/accounting"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrOverpayment       = errors.New("payment exceeds outstanding amount")
	ErrAlreadyPaid       = errors.New("document is already fully paid")
	ErrInvalidPeriod     = errors.New("period must be in YYYY-MM format")
)

// postingService turns sub-ledger documents into balanced journal entries.
// Every poster derives a deterministic transaction id from its document, so
// re-posting the same document returns the existing entry instead of
// duplicating it.
type postingService struct {
	subledgerRepo portsrepo.SubledgerRepositoryFacade
	journalSvc    portssvc.JournalSvcFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(subledgerRepo portsrepo.SubledgerRepositoryFacade, journalSvc portssvc.JournalSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		subledgerRepo: subledgerRepo,
		journalSvc:    journalSvc,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// entryLine is a minor-unit debit or credit leg of a posting.
type entryLine struct {
	accountCode string
	debit       int64
	credit      int64
}

// postDocument posts one balanced entry for a source document through the
// journal service, which enforces the double-entry and idempotency rules.
func (s *postingService) postDocument(ctx context.Context, transactionID, description, reference string, date time.Time, lines []entryLine, userID string) (*domain.JournalEntry, error) {
	reqLines := make([]dto.CreateEntryLineRequest, len(lines))
	for i, line := range lines {
		reqLines[i] = dto.CreateEntryLineRequest{
			AccountCode: line.accountCode,
			Debit:       money.FromMinor(line.debit),
			Credit:      money.FromMinor(line.credit),
		}
	}
	return s.journalSvc.CreateEntry(ctx, dto.CreateEntryRequest{
		EntryDate:     date,
		Description:   description,
		Reference:     reference,
		TransactionID: &transactionID,
		EntryType:     domain.EntryTransaction,
		Lines:         reqLines,
	}, userID)
}

func requirePositive(amount decimal.Decimal) (int64, error) {
	minor := money.ToMinor(amount)
	if minor <= 0 {
		return 0, fmt.Errorf("%w: got %s", ErrAmountNotPositive, amount.String())
	}
	return minor, nil
}

func auditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// RecordBill saves a vendor bill and posts Dr Inventory / Cr Accounts Payable.
func (s *postingService) RecordBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.VendorBill, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := requirePositive(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	bill, err := s.subledgerRepo.SaveBill(ctx, domain.VendorBill{
		VendorName:  req.VendorName,
		BillDate:    req.BillDate,
		Amount:      amount,
		Reference:   req.Reference,
		AuditFields: auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save vendor bill", "error", err)
		return nil, nil, fmt.Errorf("failed to save vendor bill: %w", err)
	}

	entry, err := s.postDocument(ctx, bill.TransactionID(),
		fmt.Sprintf("Vendor bill from %s", bill.VendorName), bill.Reference, bill.BillDate,
		[]entryLine{
			{accountCode: domain.CodeInventory, debit: amount},
			{accountCode: domain.CodeAccountsPayable, credit: amount},
		}, userID)
	if err != nil {
		logger.Error("Failed to post vendor bill entry", "error", err, "bill_id", bill.BillID)
		return nil, nil, err
	}

	logger.Info("Vendor bill recorded", "bill_id", bill.BillID, "entry_id", entry.EntryID)
	return bill, entry, nil
}

// PayBill saves a payment against a bill and posts Dr Accounts Payable / Cr Bank.
func (s *postingService) PayBill(ctx context.Context, billID int64, req dto.PayBillRequest, userID string) (*domain.BillPayment, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := requirePositive(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	bill, err := s.subledgerRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find bill %d: %w", billID, err)
	}
	if bill.IsPaid {
		return nil, nil, fmt.Errorf("%w: bill %d", ErrAlreadyPaid, billID)
	}

	payments, err := s.subledgerRepo.FindPaymentsByBillID(ctx, billID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load payments for bill %d: %w", billID, err)
	}
	var paidSoFar int64
	for _, p := range payments {
		paidSoFar += p.Amount
	}
	if paidSoFar+amount > bill.Amount {
		return nil, nil, fmt.Errorf("%w: outstanding %d, payment %d", ErrOverpayment, bill.Amount-paidSoFar, amount)
	}

	now := time.Now().UTC()
	payment, err := s.subledgerRepo.SavePayment(ctx, domain.BillPayment{
		BillID:      billID,
		PaymentDate: req.PaymentDate,
		Amount:      amount,
		AuditFields: auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save bill payment", "error", err, "bill_id", billID)
		return nil, nil, fmt.Errorf("failed to save bill payment: %w", err)
	}

	entry, err := s.postDocument(ctx, payment.TransactionID(),
		fmt.Sprintf("Payment for bill %d (%s)", billID, bill.VendorName), bill.Reference, payment.PaymentDate,
		[]entryLine{
			{accountCode: domain.CodeAccountsPayable, debit: amount},
			{accountCode: domain.CodeBank, credit: amount},
		}, userID)
	if err != nil {
		logger.Error("Failed to post bill payment entry", "error", err, "payment_id", payment.PaymentID)
		return nil, nil, err
	}

	if paidSoFar+amount == bill.Amount {
		if err := s.subledgerRepo.MarkBillPaid(ctx, billID, userID, now); err != nil {
			logger.Error("Failed to mark bill paid", "error", err, "bill_id", billID)
			return nil, nil, fmt.Errorf("failed to mark bill paid: %w", err)
		}
	}

	logger.Info("Bill payment recorded", "bill_id", billID, "payment_id", payment.PaymentID, "entry_id", entry.EntryID)
	return payment, entry, nil
}

// GetBill retrieves a bill.
func (s *postingService) GetBill(ctx context.Context, billID int64) (*domain.VendorBill, error) {
	return s.subledgerRepo.FindBillByID(ctx, billID)
}

// ListBills retrieves vendor bills.
func (s *postingService) ListBills(ctx context.Context, unpaidOnly bool) ([]domain.VendorBill, error) {
	return s.subledgerRepo.ListBills(ctx, unpaidOnly)
}

// RecordInvoice saves a customer invoice and posts Dr Accounts Receivable /
// Cr Sales Revenue, with an optional Dr COGS / Cr Inventory relief.
func (s *postingService) RecordInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.CustomerInvoice, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := requirePositive(req.Amount)
	if err != nil {
		return nil, nil, err
	}
	costOfGoods := money.ToMinor(req.CostOfGoods)
	if costOfGoods < 0 {
		return nil, nil, fmt.Errorf("%w: cost of goods is negative", ErrAmountNotPositive)
	}

	now := time.Now().UTC()
	invoice, err := s.subledgerRepo.SaveInvoice(ctx, domain.CustomerInvoice{
		CustomerName: req.CustomerName,
		InvoiceDate:  req.InvoiceDate,
		Amount:       amount,
		CostOfGoods:  costOfGoods,
		Reference:    req.Reference,
		AuditFields:  auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save customer invoice", "error", err)
		return nil, nil, fmt.Errorf("failed to save customer invoice: %w", err)
	}

	lines := []entryLine{
		{accountCode: domain.CodeAccountsReceivable, debit: amount},
		{accountCode: domain.CodeSalesRevenue, credit: amount},
	}
	if costOfGoods > 0 {
		lines = append(lines,
			entryLine{accountCode: domain.CodeCOGS, debit: costOfGoods},
			entryLine{accountCode: domain.CodeInventory, credit: costOfGoods},
		)
	}

	entry, err := s.postDocument(ctx, invoice.TransactionID(),
		fmt.Sprintf("Invoice to %s", invoice.CustomerName), invoice.Reference, invoice.InvoiceDate,
		lines, userID)
	if err != nil {
		logger.Error("Failed to post invoice entry", "error", err, "invoice_id", invoice.InvoiceID)
		return nil, nil, err
	}

	logger.Info("Customer invoice recorded", "invoice_id", invoice.InvoiceID, "entry_id", entry.EntryID)
	return invoice, entry, nil
}

// ReceiveInvoice saves a receipt against an invoice and posts Dr Bank /
// Cr Accounts Receivable.
func (s *postingService) ReceiveInvoice(ctx context.Context, invoiceID int64, req dto.ReceiveInvoiceRequest, userID string) (*domain.InvoiceReceipt, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := requirePositive(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := s.subledgerRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find invoice %d: %w", invoiceID, err)
	}
	if invoice.IsSettled {
		return nil, nil, fmt.Errorf("%w: invoice %d", ErrAlreadyPaid, invoiceID)
	}

	receipts, err := s.subledgerRepo.FindReceiptsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load receipts for invoice %d: %w", invoiceID, err)
	}
	var receivedSoFar int64
	for _, r := range receipts {
		receivedSoFar += r.Amount
	}
	if receivedSoFar+amount > invoice.Amount {
		return nil, nil, fmt.Errorf("%w: outstanding %d, receipt %d", ErrOverpayment, invoice.Amount-receivedSoFar, amount)
	}

	now := time.Now().UTC()
	receipt, err := s.subledgerRepo.SaveReceipt(ctx, domain.InvoiceReceipt{
		InvoiceID:   invoiceID,
		ReceiptDate: req.ReceiptDate,
		Amount:      amount,
		AuditFields: auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save invoice receipt", "error", err, "invoice_id", invoiceID)
		return nil, nil, fmt.Errorf("failed to save invoice receipt: %w", err)
	}

	entry, err := s.postDocument(ctx, receipt.TransactionID(),
		fmt.Sprintf("Receipt for invoice %d (%s)", invoiceID, invoice.CustomerName), invoice.Reference, receipt.ReceiptDate,
		[]entryLine{
			{accountCode: domain.CodeBank, debit: amount},
			{accountCode: domain.CodeAccountsReceivable, credit: amount},
		}, userID)
	if err != nil {
		logger.Error("Failed to post receipt entry", "error", err, "receipt_id", receipt.ReceiptID)
		return nil, nil, err
	}

	if receivedSoFar+amount == invoice.Amount {
		if err := s.subledgerRepo.MarkInvoiceSettled(ctx, invoiceID, userID, now); err != nil {
			logger.Error("Failed to mark invoice settled", "error", err, "invoice_id", invoiceID)
			return nil, nil, fmt.Errorf("failed to mark invoice settled: %w", err)
		}
	}

	logger.Info("Invoice receipt recorded", "invoice_id", invoiceID, "receipt_id", receipt.ReceiptID, "entry_id", entry.EntryID)
	return receipt, entry, nil
}

// GetInvoice retrieves an invoice.
func (s *postingService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.CustomerInvoice, error) {
	return s.subledgerRepo.FindInvoiceByID(ctx, invoiceID)
}

// ListInvoices retrieves customer invoices.
func (s *postingService) ListInvoices(ctx context.Context, unsettledOnly bool) ([]domain.CustomerInvoice, error) {
	return s.subledgerRepo.ListInvoices(ctx, unsettledOnly)
}

// RecordExpense saves an expense and posts Dr Operating Expenses /
// Cr Cash-or-Bank.
func (s *postingService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := requirePositive(req.Amount)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	expense, err := s.subledgerRepo.SaveExpense(ctx, domain.Expense{
		Category:     req.Category,
		ExpenseDate:  req.ExpenseDate,
		Amount:       amount,
		PaidFromCash: req.PaidFromCash,
		Description:  req.Description,
		AuditFields:  auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save expense", "error", err)
		return nil, nil, fmt.Errorf("failed to save expense: %w", err)
	}

	creditAccount := domain.CodeBank
	if expense.PaidFromCash {
		creditAccount = domain.CodeCash
	}

	entry, err := s.postDocument(ctx, expense.TransactionID(),
		fmt.Sprintf("Expense: %s", expense.Category), "", expense.ExpenseDate,
		[]entryLine{
			{accountCode: domain.CodeOperatingExpenses, debit: amount},
			{accountCode: creditAccount, credit: amount},
		}, userID)
	if err != nil {
		logger.Error("Failed to post expense entry", "error", err, "expense_id", expense.ExpenseID)
		return nil, nil, err
	}

	logger.Info("Expense recorded", "expense_id", expense.ExpenseID, "entry_id", entry.EntryID)
	return expense, entry, nil
}

// ListExpenses retrieves recorded expenses.
func (s *postingService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.subledgerRepo.ListExpenses(ctx)
}

// RegisterAsset saves a fixed asset and posts Dr Fixed Assets / Cr Bank.
func (s *postingService) RegisterAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.FixedAsset, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cost, err := requirePositive(req.Cost)
	if err != nil {
		return nil, nil, err
	}
	salvage := money.ToMinor(req.SalvageValue)
	if salvage < 0 {
		return nil, nil, fmt.Errorf("%w: salvage value is negative", ErrAmountNotPositive)
	}
	// The depreciation arithmetic is validated up front so a bad asset is
	// rejected at registration rather than at the first monthly run.
	if _, err := accounting.MonthlyDepreciation(cost, salvage, req.UsefulLifeMonths); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	asset, err := s.subledgerRepo.SaveAsset(ctx, domain.FixedAsset{
		Name:             req.Name,
		AcquiredDate:     req.AcquiredDate,
		Cost:             cost,
		SalvageValue:     salvage,
		UsefulLifeMonths: req.UsefulLifeMonths,
		AuditFields:      auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save fixed asset", "error", err)
		return nil, nil, fmt.Errorf("failed to save fixed asset: %w", err)
	}

	entry, err := s.postDocument(ctx, asset.TransactionID(),
		fmt.Sprintf("Asset acquisition: %s", asset.Name), "", asset.AcquiredDate,
		[]entryLine{
			{accountCode: domain.CodeFixedAssets, debit: cost},
			{accountCode: domain.CodeBank, credit: cost},
		}, userID)
	if err != nil {
		logger.Error("Failed to post asset acquisition entry", "error", err, "asset_id", asset.AssetID)
		return nil, nil, err
	}

	logger.Info("Fixed asset registered", "asset_id", asset.AssetID, "entry_id", entry.EntryID)
	return asset, entry, nil
}

// RunMonthlyDepreciation charges one straight-line period for every active
// asset: Dr Depreciation Expense / Cr Accumulated Depreciation per asset.
// The per-asset-per-period transaction id makes repeat runs idempotent.
func (s *postingService) RunMonthlyDepreciation(ctx context.Context, period string, userID string) (*dto.DepreciationRunResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := time.Parse("2006-01", period); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	assets, err := s.subledgerRepo.ListActiveAssets(ctx)
	if err != nil {
		logger.Error("Failed to list assets for depreciation run", "error", err)
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	now := time.Now().UTC()
	result := &dto.DepreciationRunResponse{Period: period, EntryIDs: []string{}}
	var totalCharge int64

	for _, asset := range assets {
		charge, err := accounting.MonthlyDepreciation(asset.Cost, asset.SalvageValue, asset.UsefulLifeMonths)
		if err != nil {
			logger.Warn("Skipping asset with invalid depreciation parameters", "asset_id", asset.AssetID, "error", err)
			result.AssetsSkipped++
			continue
		}

		// Never depreciate below salvage value; the final period takes the
		// remaining depreciable amount.
		remaining := asset.Cost - asset.SalvageValue - asset.AccumulatedDepreciation
		if remaining <= 0 {
			result.AssetsSkipped++
			continue
		}
		if charge > remaining {
			charge = remaining
		}

		entry, err := s.postDocument(ctx, asset.DepreciationTransactionID(period),
			fmt.Sprintf("Depreciation %s: %s", period, asset.Name), "", now,
			[]entryLine{
				{accountCode: domain.CodeDepreciationExp, debit: charge},
				{accountCode: domain.CodeAccumDepreciation, credit: charge},
			}, userID)
		if err != nil {
			logger.Error("Failed to post depreciation entry", "error", err, "asset_id", asset.AssetID)
			return nil, fmt.Errorf("failed to post depreciation for asset %d: %w", asset.AssetID, err)
		}

		// A pre-existing entry means an earlier run already posted this
		// asset's charge for the period.
		alreadyPosted := entry.CreatedAt.Before(now)

		// The accumulation update carries its own period guard, so it is
		// always attempted: if a previous run crashed between posting the
		// entry and updating the asset, the replay applies the missing
		// charge here instead of skipping it forever.
		applied, err := s.subledgerRepo.AddAccumulatedDepreciation(ctx, asset.AssetID, charge, period, userID, now)
		if err != nil {
			logger.Error("Failed to update accumulated depreciation", "error", err, "asset_id", asset.AssetID)
			return nil, fmt.Errorf("failed to update accumulated depreciation for asset %d: %w", asset.AssetID, err)
		}

		if alreadyPosted && !applied {
			result.AssetsSkipped++
			continue
		}
		if alreadyPosted && applied {
			logger.Warn("Recovered missed accumulated depreciation update", "asset_id", asset.AssetID, "period", period)
		}

		result.AssetsCharged++
		result.EntryIDs = append(result.EntryIDs, entry.EntryID)
		totalCharge += charge
	}

	result.TotalCharge = money.FromMinor(totalCharge)
	logger.Info("Depreciation run completed", "period", period, "charged", result.AssetsCharged, "skipped", result.AssetsSkipped)
	return result, nil
}

// ListAssets retrieves assets not yet disposed.
func (s *postingService) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	return s.subledgerRepo.ListActiveAssets(ctx)
}

// RecordPayrollRun saves a payroll run and posts the accrual:
// Dr Salaries Expense (gross) / Cr Salaries Payable (net) + Cr Tax Payable.
func (s *postingService) RecordPayrollRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := time.Parse("2006-01", req.Period); err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, req.Period)
	}

	gross, err := requirePositive(req.GrossAmount)
	if err != nil {
		return nil, nil, err
	}
	tax := money.ToMinor(req.TaxAmount)
	if tax < 0 || tax >= gross {
		return nil, nil, fmt.Errorf("%w: tax %d must be non-negative and below gross %d", apperrors.ErrValidation, tax, gross)
	}

	if existing, err := s.subledgerRepo.FindRunByPeriod(ctx, req.Period); err == nil && existing != nil {
		return nil, nil, fmt.Errorf("%w: payroll run for period %s already exists", apperrors.ErrDuplicate, req.Period)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing payroll run: %w", err)
	}

	now := time.Now().UTC()
	run, err := s.subledgerRepo.SaveRun(ctx, domain.PayrollRun{
		Period:      req.Period,
		RunDate:     req.RunDate,
		GrossAmount: gross,
		TaxAmount:   tax,
		AuditFields: auditFields(userID, now),
	})
	if err != nil {
		logger.Error("Failed to save payroll run", "error", err)
		return nil, nil, fmt.Errorf("failed to save payroll run: %w", err)
	}

	lines := []entryLine{
		{accountCode: domain.CodeSalariesExpense, debit: gross},
		{accountCode: domain.CodeSalariesPayable, credit: run.NetAmount()},
	}
	if tax > 0 {
		lines = append(lines, entryLine{accountCode: domain.CodeTaxPayable, credit: tax})
	}

	entry, err := s.postDocument(ctx, run.TransactionID(),
		fmt.Sprintf("Payroll accrual %s", run.Period), "", run.RunDate,
		lines, userID)
	if err != nil {
		logger.Error("Failed to post payroll accrual entry", "error", err, "run_id", run.RunID)
		return nil, nil, err
	}

	logger.Info("Payroll run recorded", "run_id", run.RunID, "entry_id", entry.EntryID)
	return run, entry, nil
}

// PayPayrollRun posts Dr Salaries Payable / Cr Bank for the net salaries of a
// recorded run.
func (s *postingService) PayPayrollRun(ctx context.Context, runID int64, userID string) (*domain.PayrollRun, *domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	run, err := s.subledgerRepo.FindRunByID(ctx, runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find payroll run %d: %w", runID, err)
	}
	if run.IsPaid {
		return nil, nil, fmt.Errorf("%w: payroll run %d", ErrAlreadyPaid, runID)
	}

	net := run.NetAmount()
	now := time.Now().UTC()

	entry, err := s.postDocument(ctx, run.PayrollPaymentTransactionID(),
		fmt.Sprintf("Payroll payment %s", run.Period), "", now,
		[]entryLine{
			{accountCode: domain.CodeSalariesPayable, debit: net},
			{accountCode: domain.CodeBank, credit: net},
		}, userID)
	if err != nil {
		logger.Error("Failed to post payroll payment entry", "error", err, "run_id", runID)
		return nil, nil, err
	}

	if err := s.subledgerRepo.MarkRunPaid(ctx, runID, userID, now); err != nil {
		logger.Error("Failed to mark payroll run paid", "error", err, "run_id", runID)
		return nil, nil, fmt.Errorf("failed to mark payroll run paid: %w", err)
	}
	run.IsPaid = true

	logger.Info("Payroll run paid", "run_id", runID, "entry_id", entry.EntryID)
	return run, entry, nil
}

// ListPayrollRuns retrieves payroll runs.
func (s *postingService) ListPayrollRuns(ctx context.Context) ([]domain.PayrollRun, error) {
	return s.subledgerRepo.ListRuns(ctx)
}
