package nexus

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a locale-formatted money string into a canonical
// EUR amount. Accepted inputs look like "4.500.000 €", "2.4M €", "950k €"
// or plain "1200000": an optional currency glyph, an optional magnitude
// suffix (M for millions, k for thousands), dots as either thousands
// separators or a decimal point, and commas as decimal points.
//
// Without a magnitude suffix a dot is ambiguous. The rule, inherited from
// the dashboard's data set: more than one dot, or a single dot followed by
// exactly three digits, means thousands separators ("2.500" is 2500, not
// 2.5). With a suffix, dots are always decimal points ("2.4M" is 2400000).
func ParseAmount(raw string) (Money, error) {
	clean := strings.NewReplacer("€", "", " ", "", "\u00a0", "", ",", ".").Replace(raw)
	if clean == "" {
		return Money{}, fmt.Errorf("cannot parse amount from %q", raw)
	}

	multiplier := int64(1)
	switch {
	case strings.Contains(clean, "M"):
		multiplier = 1_000_000
		clean = strings.ReplaceAll(clean, "M", "")
	case strings.Contains(clean, "k"):
		multiplier = 1_000
		clean = strings.ReplaceAll(clean, "k", "")
	}

	if multiplier == 1 && dotsAreThousands(clean) {
		clean = strings.ReplaceAll(clean, ".", "")
	}

	value, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("cannot parse amount from %q: %w", raw, err)
	}
	return Money{value: value.Mul(decimal.NewFromInt(multiplier))}, nil
}

// dotsAreThousands reports whether every dot in s acts as a thousands
// separator rather than a decimal point.
func dotsAreThousands(s string) bool {
	if strings.Count(s, ".") > 1 {
		return true
	}
	if i := strings.LastIndex(s, "."); i >= 0 && len(s)-i-1 == 3 {
		return true
	}
	return false
}
