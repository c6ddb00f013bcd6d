package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
)

// reconciliationService compares the three layers of the ledger (source
// documents, journal entries, cached balances) and repairs disagreements.
// The journal lines are the source of truth throughout.
type reconciliationService struct {
	reconciliationRepo portsrepo.ReconciliationRepository
	journalRepo        portsrepo.JournalRepositoryWithTx
	accountRepo        portsrepo.AccountRepositoryFacade
	subledgerRepo      portsrepo.SubledgerRepositoryFacade
	journalSvc         portssvc.JournalSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	reconciliationRepo portsrepo.ReconciliationRepository,
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	subledgerRepo portsrepo.SubledgerRepositoryFacade,
	journalSvc portssvc.JournalSvcFacade,
) portssvc.ReconciliationService {
	return &reconciliationService{
		reconciliationRepo: reconciliationRepo,
		journalRepo:        journalRepo,
		accountRepo:        accountRepo,
		subledgerRepo:      subledgerRepo,
		journalSvc:         journalSvc,
	}
}

// Ensure reconciliationService implements the interface
var _ portssvc.ReconciliationService = (*reconciliationService)(nil)

// Scan compares source documents, journal entries and cached balances.
func (s *reconciliationService) Scan(ctx context.Context) (*domain.IntegrityReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	missing, err := s.reconciliationRepo.FindMissingPostings(ctx)
	if err != nil {
		logger.Error("Failed to scan for missing postings", "error", err)
		return nil, fmt.Errorf("failed to scan for missing postings: %w", err)
	}

	orphans, err := s.reconciliationRepo.FindOrphanEntries(ctx)
	if err != nil {
		logger.Error("Failed to scan for orphan entries", "error", err)
		return nil, fmt.Errorf("failed to scan for orphan entries: %w", err)
	}

	unbalanced, err := s.reconciliationRepo.FindUnbalancedEntries(ctx)
	if err != nil {
		logger.Error("Failed to scan for unbalanced entries", "error", err)
		return nil, fmt.Errorf("failed to scan for unbalanced entries: %w", err)
	}

	drifts, err := s.reconciliationRepo.ComputeBalanceDrift(ctx)
	if err != nil {
		logger.Error("Failed to compute balance drift", "error", err)
		return nil, fmt.Errorf("failed to compute balance drift: %w", err)
	}

	report := &domain.IntegrityReport{
		MissingPostings:   missing,
		OrphanEntries:     orphans,
		UnbalancedEntries: unbalanced,
		BalanceDrifts:     drifts,
	}

	logger.Info("Integrity scan completed",
		"missing_postings", len(missing),
		"orphan_entries", len(orphans),
		"unbalanced_entries", len(unbalanced),
		"balance_drifts", len(drifts),
		"clean", report.Clean())
	return report, nil
}

// Repair runs a scan and fixes what it finds. Missing postings are re-posted
// through the regular posters, orphan entries are deleted with their balance
// effect reversed, then drifted balances are rebuilt from the lines.
func (s *reconciliationService) Repair(ctx context.Context, userID string) (*dto.RepairSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.RepairSummaryResponse{}

	for _, missing := range report.MissingPostings {
		if err := s.repostDocument(ctx, missing, userID); err != nil {
			logger.Error("Failed to repost missing document", "error", err, "transaction_id", missing.TransactionID)
			return nil, fmt.Errorf("failed to repost %s: %w", missing.TransactionID, err)
		}
		summary.PostingsCreated++
	}

	for _, orphan := range report.OrphanEntries {
		if err := s.deleteOrphanEntry(ctx, orphan.EntryID, userID); err != nil {
			logger.Error("Failed to delete orphan entry", "error", err, "entry_id", orphan.EntryID)
			return nil, fmt.Errorf("failed to delete orphan entry %s: %w", orphan.EntryID, err)
		}
		summary.EntriesDeleted++
	}

	// Repairing postings and orphans changes balances, so recompute drift
	// afterwards instead of trusting the initial scan.
	drifts, err := s.reconciliationRepo.ComputeBalanceDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute balance drift: %w", err)
	}
	now := time.Now().UTC()
	for _, drift := range drifts {
		if err := s.accountRepo.SetAccountBalance(ctx, drift.AccountCode, drift.ComputedBalance, userID, now); err != nil {
			logger.Error("Failed to repair cached balance", "error", err, "account_code", drift.AccountCode)
			return nil, fmt.Errorf("failed to repair balance of %s: %w", drift.AccountCode, err)
		}
		summary.BalancesRepaired++
	}

	logger.Info("Integrity repair completed",
		"postings_created", summary.PostingsCreated,
		"entries_deleted", summary.EntriesDeleted,
		"balances_repaired", summary.BalancesRepaired)
	return summary, nil
}

// repostDocument rebuilds the journal entry for a document the sweep found
// unposted, using the same account mappings as the original posters.
func (s *reconciliationService) repostDocument(ctx context.Context, missing domain.MissingPosting, userID string) error {
	lines, description, date, err := s.documentPosting(ctx, missing)
	if err != nil {
		return err
	}

	txnID := missing.TransactionID
	reqLines := make([]dto.CreateEntryLineRequest, len(lines))
	for i, line := range lines {
		reqLines[i] = dto.CreateEntryLineRequest{
			AccountCode: line.accountCode,
			Debit:       money.FromMinor(line.debit),
			Credit:      money.FromMinor(line.credit),
		}
	}

	_, err = s.journalSvc.CreateEntry(ctx, dto.CreateEntryRequest{
		EntryDate:     date,
		Description:   description,
		TransactionID: &txnID,
		EntryType:     domain.EntryTransaction,
		Lines:         reqLines,
	}, userID)
	return err
}

// documentPosting maps a missing document to its debit/credit legs.
func (s *reconciliationService) documentPosting(ctx context.Context, missing domain.MissingPosting) ([]entryLine, string, time.Time, error) {
	switch missing.Kind {
	case domain.DocVendorBill:
		bill, err := s.subledgerRepo.FindBillByID(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		return []entryLine{
			{accountCode: domain.CodeInventory, debit: bill.Amount},
			{accountCode: domain.CodeAccountsPayable, credit: bill.Amount},
		}, fmt.Sprintf("Vendor bill from %s", bill.VendorName), bill.BillDate, nil

	case domain.DocBillPayment:
		payments, err := s.findPayment(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		return []entryLine{
			{accountCode: domain.CodeAccountsPayable, debit: payments.Amount},
			{accountCode: domain.CodeBank, credit: payments.Amount},
		}, fmt.Sprintf("Payment for bill %d", payments.BillID), payments.PaymentDate, nil

	case domain.DocCustomerInvoice:
		invoice, err := s.subledgerRepo.FindInvoiceByID(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		lines := []entryLine{
			{accountCode: domain.CodeAccountsReceivable, debit: invoice.Amount},
			{accountCode: domain.CodeSalesRevenue, credit: invoice.Amount},
		}
		if invoice.CostOfGoods > 0 {
			lines = append(lines,
				entryLine{accountCode: domain.CodeCOGS, debit: invoice.CostOfGoods},
				entryLine{accountCode: domain.CodeInventory, credit: invoice.CostOfGoods},
			)
		}
		return lines, fmt.Sprintf("Invoice to %s", invoice.CustomerName), invoice.InvoiceDate, nil

	case domain.DocInvoiceReceipt:
		receipt, err := s.findReceipt(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		return []entryLine{
			{accountCode: domain.CodeBank, debit: receipt.Amount},
			{accountCode: domain.CodeAccountsReceivable, credit: receipt.Amount},
		}, fmt.Sprintf("Receipt for invoice %d", receipt.InvoiceID), receipt.ReceiptDate, nil

	case domain.DocExpense:
		expense, err := s.subledgerRepo.FindExpenseByID(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		creditAccount := domain.CodeBank
		if expense.PaidFromCash {
			creditAccount = domain.CodeCash
		}
		return []entryLine{
			{accountCode: domain.CodeOperatingExpenses, debit: expense.Amount},
			{accountCode: creditAccount, credit: expense.Amount},
		}, fmt.Sprintf("Expense: %s", expense.Category), expense.ExpenseDate, nil

	case domain.DocFixedAsset:
		asset, err := s.subledgerRepo.FindAssetByID(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		return []entryLine{
			{accountCode: domain.CodeFixedAssets, debit: asset.Cost},
			{accountCode: domain.CodeBank, credit: asset.Cost},
		}, fmt.Sprintf("Asset acquisition: %s", asset.Name), asset.AcquiredDate, nil

	case domain.DocPayrollRun:
		run, err := s.subledgerRepo.FindRunByID(ctx, missing.DocumentID)
		if err != nil {
			return nil, "", time.Time{}, err
		}
		lines := []entryLine{
			{accountCode: domain.CodeSalariesExpense, debit: run.GrossAmount},
			{accountCode: domain.CodeSalariesPayable, credit: run.NetAmount()},
		}
		if run.TaxAmount > 0 {
			lines = append(lines, entryLine{accountCode: domain.CodeTaxPayable, credit: run.TaxAmount})
		}
		return lines, fmt.Sprintf("Payroll accrual %s", run.Period), run.RunDate, nil

	default:
		return nil, "", time.Time{}, fmt.Errorf("unknown document kind %q", missing.Kind)
	}
}

func (s *reconciliationService) findPayment(ctx context.Context, paymentID int64) (*domain.BillPayment, error) {
	// Payments are keyed by bill in the repository interface; the sweep
	// reports the payment id, so resolve it through the bills.
	bills, err := s.subledgerRepo.ListBills(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, bill := range bills {
		payments, err := s.subledgerRepo.FindPaymentsByBillID(ctx, bill.BillID)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			if p.PaymentID == paymentID {
				return &p, nil
			}
		}
	}
	return nil, fmt.Errorf("bill payment %d not found", paymentID)
}

func (s *reconciliationService) findReceipt(ctx context.Context, receiptID int64) (*domain.InvoiceReceipt, error) {
	invoices, err := s.subledgerRepo.ListInvoices(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, invoice := range invoices {
		receipts, err := s.subledgerRepo.FindReceiptsByInvoiceID(ctx, invoice.InvoiceID)
		if err != nil {
			return nil, err
		}
		for _, r := range receipts {
			if r.ReceiptID == receiptID {
				return &r, nil
			}
		}
	}
	return nil, fmt.Errorf("invoice receipt %d not found", receiptID)
}

// deleteOrphanEntry removes an orphan entry and backs its effect out of the
// cached balances in one transaction.
func (s *reconciliationService) deleteOrphanEntry(ctx context.Context, entryID string, userID string) error {
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to load lines of orphan entry: %w", err)
	}

	accountCodes := make([]string, 0, len(lines))
	for _, line := range lines {
		accountCodes = append(accountCodes, line.AccountCode)
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.journalRepo.Rollback(ctx, tx) }()

	accounts, err := s.accountRepo.FindAccountsByCodesForUpdate(ctx, tx, uniqueStrings(accountCodes))
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}

	// Reverse each line's signed contribution
	balanceChanges := make(map[string]int64, len(accounts))
	for _, line := range lines {
		acc, found := accounts[line.AccountCode]
		if !found {
			return fmt.Errorf("account %s of orphan entry not found", line.AccountCode)
		}
		net := line.Debit - line.Credit
		if !acc.NormalDebit() {
			net = -net
		}
		balanceChanges[line.AccountCode] -= net
	}

	now := time.Now().UTC()
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return fmt.Errorf("failed to back out balances: %w", err)
	}
	if err := s.journalRepo.DeleteEntryInTx(ctx, tx, entryID); err != nil {
		return fmt.Errorf("failed to delete orphan entry: %w", err)
	}

	return s.journalRepo.Commit(ctx, tx)
}

// RebuildBalances recomputes every cached account balance from posted lines.
func (s *reconciliationService) RebuildBalances(ctx context.Context, userID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	drifts, err := s.reconciliationRepo.ComputeBalanceDrift(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to compute balance drift: %w", err)
	}

	now := time.Now().UTC()
	rebuilt := 0
	for _, drift := range drifts {
		if err := s.accountRepo.SetAccountBalance(ctx, drift.AccountCode, drift.ComputedBalance, userID, now); err != nil {
			logger.Error("Failed to rebuild cached balance", "error", err, "account_code", drift.AccountCode)
			return rebuilt, fmt.Errorf("failed to rebuild balance of %s: %w", drift.AccountCode, err)
		}
		rebuilt++
	}

	logger.Info("Cached balances rebuilt", "count", rebuilt)
	return rebuilt, nil
}
