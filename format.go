package coinfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Separator is inserted between groups of three digits.
const Separator = ','

// InsertThousandsSeparators groups the integer part of a decimal formatted number
// by three digits from the right. The fractional part is left untouched, so that
// small coins keep all their digits (0.00001234 stays as is).
// Anything in front of the first digit (a sign or a symbol) is kept as a prefix.
//
// It must be applied on a raw number, applying it on its own output is a no-op only
// because the integer groups are already shorter than four digits.
func InsertThousandsSeparators(s string) string {
	integer, fraction, hasFraction := strings.Cut(s, ".")

	start := strings.IndexAny(integer, "0123456789")
	if start < 0 {
		return s
	}
	end := start
	for end < len(integer) && integer[end] >= '0' && integer[end] <= '9' {
		end++
	}
	digits := integer[start:end]

	var b strings.Builder
	b.WriteString(integer[:start])
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(Separator)
		}
		b.WriteByte(digits[i])
	}
	b.WriteString(integer[end:])
	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}

// EnsureTwoDecimalPlaces pads numbers that have no fractional part, or a fractional
// part of one or two digits, to exactly two decimal places ("1234.5" becomes "1234.50").
// Numbers with three fractional digits or more are returned unchanged, as well as
// anything that is not a number.
//
// Market caps and volumes are sometimes reported with their trailing zeros dropped.
func EnsureTwoDecimalPlaces(s string) string {
	if _, fraction, found := strings.Cut(s, "."); found && len(fraction) >= 3 {
		return s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}

// timeUnits are ordered from the largest to the smallest. A month is 30 days.
var timeUnits = []struct {
	name    string
	seconds int64
}{
	{"years", 365 * 24 * 3600},
	{"months", 30 * 24 * 3600},
	{"days", 24 * 3600},
	{"hours", 3600},
	{"minutes", 60},
}

// RelativeTimeSince returns how long ago 'then' was, seen from 'now', using the largest
// unit that counts more than one whole unit ("3 days", "60 minutes"). It falls back to
// seconds. Exactly one unit is not enough: one hour is "60 minutes".
//
// Instants in the future are "0 seconds".
func RelativeTimeSince(then, now time.Time) string {
	seconds := int64(now.Sub(then) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	for _, u := range timeUnits {
		if n := seconds / u.seconds; n > 1 {
			return fmt.Sprintf("%d %s", n, u.name)
		}
	}
	return fmt.Sprintf("%d seconds", seconds)
}

// CurrencySymbol returns the display symbol for a 3-letter currency code ("€" for "EUR").
// Unknown codes are their own symbol.
func CurrencySymbol(code string) string {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil && c.Grapheme != "" {
		return c.Grapheme
	}
	return code
}
