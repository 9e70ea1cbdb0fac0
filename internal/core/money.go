package core

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every rendered monetary amount.
const CurrencySymbol = "Rs."

// FormatMoney renders an amount as a fixed two-decimal currency string.
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
