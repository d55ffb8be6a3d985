package calculation

import (
	"github.com/finfree/independence-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Project produces one compounded value per period 0..periods inclusive.
//
// The compounding law is value(t) = initial * (1+r)^t with r = growthRatePct/100.
// A periodic contribution is treated as an ordinary annuity (applied at the
// end of each period): contribution * ((1+r)^t - 1) / r, with an explicit
// r == 0 branch (contribution * t) to avoid the 0/0 singularity of the
// closed form. The sequence is deterministic and holds no state between
// calls; recomputing from identical inputs yields identical output.
//
// Decimal arithmetic cannot produce NaN or infinity, so the only pathological
// configuration left is a rate below -100%, which flips the sign of the
// growth factor every period. Such inputs degrade every period's value to
// zero so downstream charting and comparisons stay well-defined.
func Project(initial, growthRatePct decimal.Decimal, periods int, contribution decimal.Decimal) []decimal.Decimal {
	if periods < 0 {
		periods = 0
	}
	r := growthRatePct.Div(hundred)
	growth := one.Add(r)

	values := make([]decimal.Decimal, periods+1)
	if growth.LessThan(decimal.Zero) {
		for t := range values {
			values[t] = decimal.Zero
		}
		return values
	}

	for t := 0; t <= periods; t++ {
		factor := growth.Pow(decimal.NewFromInt(int64(t)))
		value := initial.Mul(factor)

		if !contribution.IsZero() {
			if r.IsZero() {
				value = value.Add(contribution.Mul(decimal.NewFromInt(int64(t))))
			} else {
				value = value.Add(contribution.Mul(factor.Sub(one)).Div(r))
			}
		}

		values[t] = value
	}
	return values
}

// ConstantSeries models a target quantity held flat across all periods, the
// degenerate projection with zero growth and no contribution.
func ConstantSeries(value decimal.Decimal, periods int) []decimal.Decimal {
	return Project(value, decimal.Zero, periods, decimal.Zero)
}

// ProjectSeries pairs a tracked projection against a constant target line,
// one ProjectionPoint per period 0..periods inclusive.
func ProjectSeries(initial, growthRatePct decimal.Decimal, periods int, contribution, target decimal.Decimal) []domain.ProjectionPoint {
	tracked := Project(initial, growthRatePct, periods, contribution)
	points := make([]domain.ProjectionPoint, len(tracked))
	for t, value := range tracked {
		points[t] = domain.ProjectionPoint{
			PeriodIndex:  t,
			TrackedValue: value,
			TargetValue:  target,
		}
	}
	return points
}
