package domain

// Settings is the single explicitly-initialized business configuration
// record. The store enforces a single row; services must call Initialize
// before any posting can reference it.
type Settings struct {
	CompanyName          string `json:"companyName"`
	BaseCurrency         string `json:"baseCurrency"` // ISO 4217, e.g. "UZS"
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"`
	AuditFields
}

// User is an authenticated operator of the ledger API.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
