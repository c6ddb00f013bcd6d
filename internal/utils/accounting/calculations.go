package accounting

import (
	"fmt"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// SignedAmount applies the accounting sign convention to one journal line.
// DEBIT to ASSET/EXPENSE grows the balance, CREDIT shrinks it; the signs
// flip for LIABILITY/EQUITY/REVENUE. This is the only place the convention
// lives; services and repositories both use it so the cached balances and
// report aggregations can never disagree on signs.
func SignedAmount(line domain.JournalLine, accountType domain.AccountType) (int64, error) {
	net := line.Debit - line.Credit
	switch accountType {
	case domain.Asset, domain.ExpenseAccount:
		return net, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return -net, nil
	default:
		return 0, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountCode)
	}
}

// ValidateEntryBalance checks the double-entry invariants for a set of lines:
// at least two lines, every line has exactly one positive side, and total
// debits equal total credits.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal entry must have at least two lines")
	}

	var debits, credits int64
	for _, line := range lines {
		if line.Debit < 0 || line.Credit < 0 {
			return fmt.Errorf("line amounts must be non-negative for account %s", line.AccountCode)
		}
		if (line.Debit == 0) == (line.Credit == 0) {
			return fmt.Errorf("line must have exactly one of debit or credit set for account %s", line.AccountCode)
		}
		debits += line.Debit
		credits += line.Credit
	}

	if debits != credits {
		return fmt.Errorf("journal entry does not balance: debits %d, credits %d", debits, credits)
	}
	return nil
}

// EntryAmount computes the economic value of a balanced entry: the sum of
// the debit side.
func EntryAmount(lines []domain.JournalLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Debit
	}
	return total
}

// BalanceChanges accumulates the signed balance delta per account for a set
// of lines. accountTypes must contain every referenced account.
func BalanceChanges(lines []domain.JournalLine, accountTypes map[string]domain.AccountType) (map[string]int64, error) {
	changes := make(map[string]int64, len(lines))
	for _, line := range lines {
		accountType, ok := accountTypes[line.AccountCode]
		if !ok {
			return nil, fmt.Errorf("account type not known for account %s", line.AccountCode)
		}
		signed, err := SignedAmount(line, accountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountCode] += signed
	}
	return changes, nil
}

// MonthlyDepreciation computes the straight-line monthly charge
// (cost - salvage) / usefulLifeMonths, truncated to whole minor units.
func MonthlyDepreciation(cost, salvage int64, usefulLifeMonths int) (int64, error) {
	if usefulLifeMonths <= 0 {
		return 0, fmt.Errorf("useful life must be positive, got %d months", usefulLifeMonths)
	}
	if salvage > cost {
		return 0, fmt.Errorf("salvage value %d exceeds cost %d", salvage, cost)
	}
	return (cost - salvage) / int64(usefulLifeMonths), nil
}
