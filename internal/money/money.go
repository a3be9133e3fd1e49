// Package money defines the single parse-or-zero primitive every monetary
// read in the engine goes through. Malformed or missing numeric input
// contributes zero; totals never carry NaN or infinities.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts operator input into an amount. Blank, "null", or otherwise
// unparsable values yield zero. Thousands separators are tolerated.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseCount converts operator input into a non-negative whole count.
func ParseCount(s string) int {
	d := Parse(s)
	if !d.IsPositive() {
		return 0
	}
	return int(d.IntPart())
}

// FromFloat converts a float64, guarding NaN and infinities to zero.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Round rounds to the nearest whole currency unit, halves away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// SafeDiv divides num by den, returning zero when den is zero or negative.
func SafeDiv(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}
