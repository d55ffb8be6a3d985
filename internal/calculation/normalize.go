package calculation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Domain-specific percentage bounds used by callers of NormalizePercent.
var (
	// GrowthRateMax caps the annual growth rate assumption at 15%.
	GrowthRateMax = decimal.NewFromInt(15)
	// PercentMax is the generic percentage upper bound.
	PercentMax = decimal.NewFromInt(100)
)

// NormalizeCurrency turns free-text currency input into a safe non-negative
// amount. Malformed input degrades to zero rather than raising; negative
// results are floored to zero. The stored value carries no upper bound.
func NormalizeCurrency(raw string) decimal.Decimal {
	parsed, ok := parseNumeric(raw)
	if !ok {
		return decimal.Zero
	}
	if parsed.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return parsed
}

// NormalizePercent turns free-text percentage input into a value clamped to
// [min, max]. The bound is supplied by the call site: growth-rate sliders
// pass [0, GrowthRateMax], generic percentages pass [0, PercentMax].
func NormalizePercent(raw string, min, max decimal.Decimal) decimal.Decimal {
	parsed, ok := parseNumeric(raw)
	if !ok {
		return min
	}
	return Clamp(parsed, min, max)
}

// ClampToRange projects a stored value onto a bounded display range, e.g. a
// slider with a fixed maximum. The stored value itself is never altered.
func ClampToRange(value, max decimal.Decimal) decimal.Decimal {
	return Clamp(value, decimal.Zero, max)
}

// Clamp bounds value to [min, max]
func Clamp(value, min, max decimal.Decimal) decimal.Decimal {
	if value.LessThan(min) {
		return min
	}
	if value.GreaterThan(max) {
		return max
	}
	return value
}

// parseNumeric strips everything except digits, decimal point and a leading
// minus sign, then parses the remainder. Reports false for empty, malformed,
// NaN or infinite input.
func parseNumeric(raw string) (decimal.Decimal, bool) {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." || cleaned == "-." {
		return decimal.Zero, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}
