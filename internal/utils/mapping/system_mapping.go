package mapping

import (
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/models"
)

func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		CompanyName:          d.CompanyName,
		BaseCurrency:         d.BaseCurrency,
		FiscalYearStartMonth: d.FiscalYearStartMonth,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		CompanyName:          m.CompanyName,
		BaseCurrency:         m.BaseCurrency,
		FiscalYearStartMonth: m.FiscalYearStartMonth,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
