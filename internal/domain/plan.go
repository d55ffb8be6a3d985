package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionConfig holds the growth assumptions driving a projection.
// GrowthRatePct is an annual percentage (7 means 7%), not a fraction.
type ProjectionConfig struct {
	GrowthRatePct        decimal.Decimal `json:"growth_rate_pct" yaml:"growth_rate_pct"`
	HorizonYears         int             `json:"horizon_years" yaml:"horizon_years"`
	PeriodicContribution decimal.Decimal `json:"periodic_contribution" yaml:"periodic_contribution"`
}

// ProjectionPoint is one row of a finite projection series. PeriodIndex is
// an abstract period count; mapping it to a calendar year happens at the
// presentation boundary, not in the engine.
type ProjectionPoint struct {
	PeriodIndex  int             `json:"period_index"`
	TrackedValue decimal.Decimal `json:"tracked_value"`
	TargetValue  decimal.Decimal `json:"target_value"`
}

// ScorecardResult is the derived progress snapshot. IndependencePeriod is
// nil when the target is never reached within the search bound.
type ScorecardResult struct {
	ProgressPct        decimal.Decimal `json:"progress_pct"`
	IndependencePeriod *int            `json:"independence_period,omitempty"`
}

// MonteCarloConfig controls the randomized independence simulation
type MonteCarloConfig struct {
	NumSimulations int             `json:"num_simulations" yaml:"num_simulations"`
	ReturnStdDev   decimal.Decimal `json:"return_std_dev_pct" yaml:"return_std_dev_pct"`
	Seed           int64           `json:"seed" yaml:"seed"`
}

// MonteCarloResult summarizes the randomized independence simulation
type MonteCarloResult struct {
	NumSimulations           int              `json:"num_simulations"`
	SuccessRate              decimal.Decimal  `json:"success_rate"`
	MedianIndependencePeriod *int             `json:"median_independence_period,omitempty"`
	PercentileRanges         PercentileRanges `json:"percentile_ranges"`
}

// PercentileRanges reports the spread of final tracked values across simulations
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// PlanInput is the complete set of caller-supplied inputs for one plan run.
// AsOfYear anchors period indexes to the calendar; the engine never reads
// the wall clock itself.
type PlanInput struct {
	Assets               []LineItem        `json:"assets" yaml:"assets"`
	Liabilities          []LineItem        `json:"liabilities" yaml:"liabilities"`
	LifestyleCost        decimal.Decimal   `json:"lifestyle_cost" yaml:"lifestyle_cost"`
	CurrentPassiveIncome decimal.Decimal   `json:"current_passive_income" yaml:"current_passive_income"`
	Projection           ProjectionConfig  `json:"projection" yaml:"projection"`
	ProgressCeiling      decimal.Decimal   `json:"progress_ceiling" yaml:"progress_ceiling"`
	AsOfYear             int               `json:"as_of_year" yaml:"as_of_year"`
	MonteCarlo           *MonteCarloConfig `json:"monte_carlo,omitempty" yaml:"monte_carlo,omitempty"`
}

// GenerateAssumptions produces human-readable assumption strings for reports
func (pi *PlanInput) GenerateAssumptions() []string {
	assumptions := []string{
		"Annual growth rate: " + pi.Projection.GrowthRatePct.StringFixed(2) + "%",
		"Projection horizon: " + decimal.NewFromInt(int64(pi.Projection.HorizonYears)).String() + " years",
		"Annual contribution: $" + pi.Projection.PeriodicContribution.StringFixed(2),
		"Lifestyle cost target: $" + pi.LifestyleCost.StringFixed(2),
	}
	if pi.MonteCarlo != nil {
		assumptions = append(assumptions,
			"Monte Carlo return volatility: "+pi.MonteCarlo.ReturnStdDev.StringFixed(2)+"%")
	}
	return assumptions
}

// PlanResult is the full engine output for one plan run
type PlanResult struct {
	Totals              Totals            `json:"totals"`
	NetWorthSeries      []ProjectionPoint `json:"net_worth_series"`
	PassiveIncomeSeries []ProjectionPoint `json:"passive_income_series"`
	Scorecard           ScorecardResult   `json:"scorecard"`
	IndependenceYear    *int              `json:"independence_year,omitempty"`
	AsOfYear            int               `json:"as_of_year"`
	MonteCarlo          *MonteCarloResult `json:"monte_carlo,omitempty"`
	Assumptions         []string          `json:"assumptions"`
}

// FinalNetWorth returns the last value of the net worth series
func (pr *PlanResult) FinalNetWorth() decimal.Decimal {
	if len(pr.NetWorthSeries) == 0 {
		return decimal.Zero
	}
	return pr.NetWorthSeries[len(pr.NetWorthSeries)-1].TrackedValue
}

// IsIndependent reports whether independence is reached within the search bound
func (pr *PlanResult) IsIndependent() bool {
	return pr.Scorecard.IndependencePeriod != nil
}
