package formatter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal places used for amounts and for the per-second rate.
const (
	AmountPlaces = 2
	RatePlaces   = 4
)

// Money renders amount with the currency symbol, rounded half away from zero
// to places decimals and grouped in thousands, e.g. "RM1,234.50".
func Money(symbol string, amount float64, places int32) string {
	d := decimal.NewFromFloat(amount).Round(places)
	if d.IsZero() {
		d = decimal.Zero
	}
	text := d.Abs().StringFixed(places)

	whole, frac, _ := strings.Cut(text, ".")
	out := groupThousands(whole)
	if frac != "" {
		out += "." + frac
	}
	if d.IsNegative() {
		return "-" + symbol + out
	}
	return symbol + out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
