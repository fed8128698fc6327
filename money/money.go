// Package money rounds and formats euro amounts for display.
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.EuropeanPortuguese)

// Amount is a decimal that encodes as a bare JSON number instead of the
// quoted string decimal.Decimal produces by default.
type Amount struct {
	decimal.Decimal
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Cents rounds v to two decimal places, half away from zero. NaN and ±Inf
// have no decimal form and become zero.
func Cents(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// FormatEUR renders an amount with the euro symbol and pt-PT separators.
func FormatEUR(v decimal.Decimal) string {
	return printer.Sprint(currency.Symbol(currency.EUR.Amount(v.InexactFloat64())))
}
