package domain

// DocumentKind identifies a sub-ledger document type in integrity reports.
type DocumentKind string

const (
	DocVendorBill      DocumentKind = "VENDOR_BILL"
	DocBillPayment     DocumentKind = "BILL_PAYMENT"
	DocCustomerInvoice DocumentKind = "CUSTOMER_INVOICE"
	DocInvoiceReceipt  DocumentKind = "INVOICE_RECEIPT"
	DocExpense         DocumentKind = "EXPENSE"
	DocFixedAsset      DocumentKind = "FIXED_ASSET"
	DocPayrollRun      DocumentKind = "PAYROLL_RUN"
)

// MissingPosting is a sub-ledger document with no journal entry for its
// transaction id.
type MissingPosting struct {
	Kind          DocumentKind `json:"kind"`
	DocumentID    int64        `json:"documentID"`
	TransactionID string       `json:"transactionID"`
	Amount        int64        `json:"amount"`
}

// OrphanEntry is a journal entry whose transaction id points at a
// sub-ledger document that no longer exists.
type OrphanEntry struct {
	EntryID       string `json:"entryID"`
	TransactionID string `json:"transactionID"`
	Amount        int64  `json:"amount"`
}

// BalanceDrift is an account whose cached balance disagrees with the signed
// sum of its posted lines.
type BalanceDrift struct {
	AccountCode     string `json:"accountCode"`
	CachedBalance   int64  `json:"cachedBalance"`
	ComputedBalance int64  `json:"computedBalance"`
}

// IntegrityReport is the result of one reconciliation sweep.
type IntegrityReport struct {
	MissingPostings []MissingPosting `json:"missingPostings"`
	OrphanEntries   []OrphanEntry    `json:"orphanEntries"`
	// UnbalancedEntries lists entry ids whose lines no longer sum to equal
	// debits and credits. These indicate corruption below the service layer
	// and are reported but never auto-repaired.
	UnbalancedEntries []string       `json:"unbalancedEntries"`
	BalanceDrifts     []BalanceDrift `json:"balanceDrifts"`
}

// Clean reports whether the sweep found nothing to repair.
func (r IntegrityReport) Clean() bool {
	return len(r.MissingPostings) == 0 && len(r.OrphanEntries) == 0 &&
		len(r.UnbalancedEntries) == 0 && len(r.BalanceDrifts) == 0
}
