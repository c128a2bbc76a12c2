package money

import "github.com/shopspring/decimal"

// All arithmetic on prices and totals in this codebase is integer cents.
// This package only converts cents to display strings at the API edge.

// FormatCents renders an integer minor-unit amount as a decimal string
// ("1234" -> "12.34"). Display only, never fed back into calculations.
func FormatCents(cents int) string {
	return decimal.NewFromInt(int64(cents)).Shift(-2).StringFixed(2)
}
