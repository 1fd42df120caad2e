package payhere

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts are signed as plain decimals with exactly two fractional digits and
// no grouping, e.g. "1000.00".
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// FormatAmount renders d the way it appears in signatures and API payloads.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount accepts a non-negative decimal with at most two fractional
// digits. Exponents, signs and grouping separators are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("malformed amount %q", s)
	}
	return decimal.NewFromString(s)
}

// IsMinorUnitSafe reports whether d is positive and has no more than two
// fractional digits.
func IsMinorUnitSafe(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(2))
}
