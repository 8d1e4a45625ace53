// Package money renders decimal amounts in a configured currency unit.
package money

import "github.com/shopspring/decimal"

// DefaultCurrency is used when no currency unit is configured.
const DefaultCurrency Currency = "TL"

// Currency is the unit label appended to rendered amounts.
type Currency string

// Format renders d followed by the currency unit, e.g. "22.5 TL".
func (c Currency) Format(d decimal.Decimal) string {
	if c == "" {
		return d.String()
	}
	return d.String() + " " + string(c)
}
