package dto

import (
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// InitializeSettingsRequest defines the data needed to initialize the
// business. Accepted exactly once.
type InitializeSettingsRequest struct {
	CompanyName          string `json:"companyName" binding:"required"`
	BaseCurrency         string `json:"baseCurrency" binding:"required,len=3"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"required,min=1,max=12"`
	SeedDefaultChart     bool   `json:"seedDefaultChart"`
}

// UpdateSettingsRequest defines the settings fields that may change later.
// The base currency is fixed at initialization.
type UpdateSettingsRequest struct {
	CompanyName          *string `json:"companyName"`
	FiscalYearStartMonth *int    `json:"fiscalYearStartMonth"`
}

// SettingsResponse defines the data returned for the business settings.
type SettingsResponse struct {
	CompanyName          string    `json:"companyName"`
	BaseCurrency         string    `json:"baseCurrency"`
	FiscalYearStartMonth int       `json:"fiscalYearStartMonth"`
	CreatedAt            time.Time `json:"createdAt"`
	LastUpdatedAt        time.Time `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts a domain.Settings to SettingsResponse DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:          s.CompanyName,
		BaseCurrency:         s.BaseCurrency,
		FiscalYearStartMonth: s.FiscalYearStartMonth,
		CreatedAt:            s.CreatedAt,
		LastUpdatedAt:        s.LastUpdatedAt,
	}
}
