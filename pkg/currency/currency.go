// Package currency formats decimal amounts for display.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default is used when a code is unknown to go-money
const Default = money.INR

// Format renders amount in the currency's minor-unit precision, e.g. ₹1,234.50
func Format(amount decimal.Decimal, code string) string {
	cur := lookup(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

func lookup(code string) *money.Currency {
	if cur := money.GetCurrency(strings.ToUpper(code)); cur != nil {
		return cur
	}
	return money.GetCurrency(Default)
}
