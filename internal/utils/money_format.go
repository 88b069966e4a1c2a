package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney formats a money amount to two decimal places, the precision
// used throughout the cashiering views and vouchers.
// Example: amount 12.3456 returns "12.35"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
