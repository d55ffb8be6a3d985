package calculation

import (
	"github.com/shopspring/decimal"
)

// Progress ceiling policies. Equivalent calculators in the wild disagree on
// whether progress past the target should read as 100% or keep counting up
// to 300%; the ceiling is therefore an explicit parameter and these are the
// two supported policies. The engine defaults to DefaultProgressCeiling.
var (
	DefaultProgressCeiling  = decimal.NewFromInt(100)
	ExtendedProgressCeiling = decimal.NewFromInt(300)
)

// ProgressPct computes current as a rounded percentage of target, clamped to
// [0, ceiling]. A target of zero or below yields 0 rather than a division
// by zero; a non-positive ceiling falls back to the default policy.
func ProgressPct(current, target, ceiling decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if ceiling.LessThanOrEqual(decimal.Zero) {
		ceiling = DefaultProgressCeiling
	}
	pct := current.Div(target).Mul(hundred).Round(0)
	return Clamp(pct, decimal.Zero, ceiling)
}
