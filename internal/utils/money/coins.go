package money

import "unicode"

// coinValues maps a coin symbol to its value in cents.
var coinValues = map[rune]int64{
	'P': 1,   // penny
	'N': 5,   // nickel
	'D': 10,  // dime
	'Q': 25,  // quarter
	'H': 50,  // half dollar
	'W': 100, // dollar coin
}

// ParseCoins totals a string of coin symbols in cents. Parsing is
// case-insensitive. Unrecognized characters are excluded from the sum and
// returned in encounter order so the caller can report each one; they never
// abort the parse. An empty string yields 0 and no invalid coins.
func ParseCoins(coins string) (totalCents int64, invalid []rune) {
	for _, r := range coins {
		r = unicode.ToUpper(r)
		if value, ok := coinValues[r]; ok {
			totalCents += value
		} else {
			invalid = append(invalid, r)
		}
	}
	return totalCents, invalid
}
