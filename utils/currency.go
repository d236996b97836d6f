package utils

import "github.com/shopspring/decimal"

// RupeeSymbol prefixes every amount shown to guests.
const RupeeSymbol = "₹"

// FormatAmount renders d without grouping separators: whole amounts as plain
// digits, fractional amounts with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.StringFixed(2)
}

// FormatRupees renders d as ₹<amount>.
func FormatRupees(d decimal.Decimal) string {
	return RupeeSymbol + FormatAmount(d)
}
