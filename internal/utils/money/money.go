// Package money holds the conversion helpers between the decimal major-unit
// representation used at the API boundary and the integer minor-unit (cents)
// representation used for every balance inside the bank.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts a decimal dollar amount to integer cents. The amount is
// rounded to the nearest cent (ties away from zero), and any sub-cent residue
// is truncated. The sign is preserved; the conversion never fails.
func ToCents(dollars decimal.Decimal) int64 {
	return dollars.Round(2).Mul(hundred).IntPart()
}

// FromCents converts integer cents back to a decimal dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// FormatCents renders integer cents as a two-decimal dollar string,
// e.g. 1250 -> "12.50".
func FormatCents(cents int64) string {
	return FromCents(cents).StringFixed(2)
}

// BillBreakdown computes the greedy bill split for a whole-dollar ATM
// withdrawal: twenties first, then tens, then fives.
func BillBreakdown(dollars int64) (twenties, tens, fives int64) {
	twenties = dollars / 20
	remainder := dollars % 20
	tens = remainder / 10
	remainder = remainder % 10
	fives = remainder / 5
	return twenties, tens, fives
}
