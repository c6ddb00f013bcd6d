// Package money converts between integer minor-unit amounts (the persisted
// format) and decimal display amounts for report responses.
package money

import "github.com/shopspring/decimal"

// Exponent is the number of decimal places of the minor unit (e.g. 2 for
// tiyin/cents).
const Exponent = 2

// FromMinor converts an integer minor-unit amount to a decimal major-unit
// amount, e.g. 500000 -> 5000.00.
func FromMinor(amount int64) decimal.Decimal {
	return decimal.New(amount, -Exponent)
}

// ToMinor converts a decimal major-unit amount to integer minor units,
// truncating any sub-minor-unit fraction.
func ToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(Exponent).Truncate(0).IntPart()
}

// Format renders a minor-unit amount as a fixed-point string for display,
// e.g. 500000 -> "5000.00".
func Format(amount int64) string {
	return FromMinor(amount).StringFixed(Exponent)
}
