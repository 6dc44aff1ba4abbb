package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given number of decimal places.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 70 with precision 2 returns "70.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return amount.StringFixed(int32(precision))
}
