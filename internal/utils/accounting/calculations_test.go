package accounting

import (
	"testing"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debitLine(code string, amount int64) domain.JournalLine {
	return domain.JournalLine{AccountCode: code, Debit: amount}
}

func creditLine(code string, amount int64) domain.JournalLine {
	return domain.JournalLine{AccountCode: code, Credit: amount}
}

func TestSignedAmount(t *testing.T) {
	// Debit grows asset and expense balances
	signed, err := SignedAmount(debitLine("1010", 100), domain.Asset)
	require.NoError(t, err)
	assert.Equal(t, int64(100), signed)

	signed, err = SignedAmount(debitLine("5300", 100), domain.ExpenseAccount)
	require.NoError(t, err)
	assert.Equal(t, int64(100), signed)

	// Credit grows liability, equity and revenue balances
	signed, err = SignedAmount(creditLine("2100", 100), domain.Liability)
	require.NoError(t, err)
	assert.Equal(t, int64(100), signed)

	signed, err = SignedAmount(creditLine("3100", 100), domain.Equity)
	require.NoError(t, err)
	assert.Equal(t, int64(100), signed)

	signed, err = SignedAmount(creditLine("4100", 100), domain.Revenue)
	require.NoError(t, err)
	assert.Equal(t, int64(100), signed)

	// The opposite side shrinks
	signed, err = SignedAmount(creditLine("1010", 100), domain.Asset)
	require.NoError(t, err)
	assert.Equal(t, int64(-100), signed)

	signed, err = SignedAmount(debitLine("4100", 100), domain.Revenue)
	require.NoError(t, err)
	assert.Equal(t, int64(-100), signed)
}

func TestSignedAmountUnknownType(t *testing.T) {
	_, err := SignedAmount(debitLine("9999", 100), domain.AccountType("CONTRA"))
	assert.Error(t, err)
}

func TestValidateEntryBalance(t *testing.T) {
	// Balanced two-line entry
	err := ValidateEntryBalance([]domain.JournalLine{
		debitLine("1010", 500),
		creditLine("4100", 500),
	})
	assert.NoError(t, err)

	// Balanced multi-line entry
	err = ValidateEntryBalance([]domain.JournalLine{
		debitLine("5100", 700),
		creditLine("2100", 550),
		creditLine("2150", 150),
	})
	assert.NoError(t, err)
}

func TestValidateEntryBalanceErrors(t *testing.T) {
	// Fewer than two lines
	err := ValidateEntryBalance([]domain.JournalLine{debitLine("1010", 500)})
	assert.Error(t, err)

	// Unbalanced
	err = ValidateEntryBalance([]domain.JournalLine{
		debitLine("1010", 500),
		creditLine("4100", 400),
	})
	assert.Error(t, err)

	// Both sides set on one line
	err = ValidateEntryBalance([]domain.JournalLine{
		{AccountCode: "1010", Debit: 500, Credit: 500},
		creditLine("4100", 0),
	})
	assert.Error(t, err)

	// Neither side set
	err = ValidateEntryBalance([]domain.JournalLine{
		{AccountCode: "1010"},
		creditLine("4100", 500),
	})
	assert.Error(t, err)

	// Negative amount
	err = ValidateEntryBalance([]domain.JournalLine{
		debitLine("1010", -500),
		creditLine("4100", -500),
	})
	assert.Error(t, err)
}

func TestEntryAmount(t *testing.T) {
	lines := []domain.JournalLine{
		debitLine("5100", 700),
		creditLine("2100", 550),
		creditLine("2150", 150),
	}
	assert.Equal(t, int64(700), EntryAmount(lines))
}

func TestBalanceChanges(t *testing.T) {
	lines := []domain.JournalLine{
		debitLine("1310", 500000),
		creditLine("2100", 500000),
	}
	types := map[string]domain.AccountType{
		"1310": domain.Asset,
		"2100": domain.Liability,
	}

	changes, err := BalanceChanges(lines, types)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), changes["1310"])
	assert.Equal(t, int64(500000), changes["2100"])
}

func TestBalanceChangesNetsSameAccount(t *testing.T) {
	// Two lines hitting the same account net into one delta
	lines := []domain.JournalLine{
		debitLine("1010", 300),
		creditLine("1010", 100),
		creditLine("4100", 200),
	}
	types := map[string]domain.AccountType{
		"1010": domain.Asset,
		"4100": domain.Revenue,
	}

	changes, err := BalanceChanges(lines, types)
	require.NoError(t, err)
	assert.Equal(t, int64(200), changes["1010"])
	assert.Equal(t, int64(200), changes["4100"])
}

func TestBalanceChangesUnknownAccount(t *testing.T) {
	lines := []domain.JournalLine{
		debitLine("1010", 100),
		creditLine("4100", 100),
	}
	_, err := BalanceChanges(lines, map[string]domain.AccountType{"1010": domain.Asset})
	assert.Error(t, err)
}

func TestMonthlyDepreciation(t *testing.T) {
	// 6,000,000 over 60 months, no salvage
	charge, err := MonthlyDepreciation(6000000, 0, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), charge)

	// Salvage value reduces the depreciable base
	charge, err = MonthlyDepreciation(6000000, 600000, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), charge)

	// Remainders truncate
	charge, err = MonthlyDepreciation(1000, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(333), charge)
}

func TestMonthlyDepreciationErrors(t *testing.T) {
	_, err := MonthlyDepreciation(1000, 0, 0)
	assert.Error(t, err)

	_, err = MonthlyDepreciation(1000, 2000, 12)
	assert.Error(t, err)
}
