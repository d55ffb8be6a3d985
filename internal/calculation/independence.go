package calculation

import (
	"github.com/shopspring/decimal"
)

// IndependenceSearchYears bounds the independence search. It is deliberately
// wider than the default chart horizon: the chart window and "when will I be
// free" are different questions with different horizons.
const IndependenceSearchYears = 50

// Display horizon bounds for projection charts.
const (
	MinHorizonYears     = 5
	DefaultHorizonYears = 20
	MaxHorizonYears     = 50
)

// FindCrossing scans a tracked sequence for the first period at or above the
// target. Returns (period, true) for the smallest such period, starting at
// 0. A target of zero or below is treated as unset, never as already
// achieved, so it always reports not found.
func FindCrossing(tracked []decimal.Decimal, target decimal.Decimal) (int, bool) {
	if target.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	for t, value := range tracked {
		if value.GreaterThanOrEqual(target) {
			return t, true
		}
	}
	return 0, false
}

// ResolveIndependence runs a bounded simulation of the tracked quantity and
// finds the first period where it meets or exceeds the target. maxPeriods is
// independent of any display horizon; callers normally pass
// IndependenceSearchYears. Returns (period, true), or (0, false) when the
// target is never reached within the bound.
func ResolveIndependence(initial, growthRatePct, contribution, target decimal.Decimal, maxPeriods int) (int, bool) {
	if maxPeriods <= 0 {
		maxPeriods = IndependenceSearchYears
	}
	tracked := Project(initial, growthRatePct, maxPeriods, contribution)
	return FindCrossing(tracked, target)
}
