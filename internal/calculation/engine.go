package calculation

import (
	"context"
	"fmt"

	"github.com/finfree/independence-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanEngine orchestrates all plan calculations. It retains no state
// between runs: every call is a full recomputation from the inputs, which
// for a bounded output (at most IndependenceSearchYears points) is cheaper
// than any incremental update machinery.
type PlanEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewPlanEngine creates a new plan engine
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the plan engine. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan computes the complete plan result for one set of inputs
func (pe *PlanEngine) RunPlan(ctx context.Context, input *domain.PlanInput) (*domain.PlanResult, error) {
	if input == nil {
		return nil, fmt.Errorf("plan input is required")
	}
	cfg := sanitizeConfig(input.Projection)

	totals := ComputeTotals(input.Assets, input.Liabilities)

	passiveIncome := input.CurrentPassiveIncome
	if passiveIncome.LessThan(decimal.Zero) {
		passiveIncome = decimal.Zero
	}
	lifestyleCost := input.LifestyleCost
	if lifestyleCost.LessThan(decimal.Zero) {
		lifestyleCost = decimal.Zero
	}

	// Net worth series includes contributions; the passive income series
	// compounds on its own against the constant lifestyle-cost line.
	netWorthSeries := ProjectSeries(totals.NetWorth, cfg.GrowthRatePct, cfg.HorizonYears, cfg.PeriodicContribution, lifestyleCost)
	incomeSeries := ProjectSeries(passiveIncome, cfg.GrowthRatePct, cfg.HorizonYears, decimal.Zero, lifestyleCost)

	scorecard := domain.ScorecardResult{
		ProgressPct: ProgressPct(passiveIncome, lifestyleCost, input.ProgressCeiling),
	}
	if period, found := ResolveIndependence(passiveIncome, cfg.GrowthRatePct, decimal.Zero, lifestyleCost, IndependenceSearchYears); found {
		scorecard.IndependencePeriod = &period
	}

	result := &domain.PlanResult{
		Totals:              totals,
		NetWorthSeries:      netWorthSeries,
		PassiveIncomeSeries: incomeSeries,
		Scorecard:           scorecard,
		AsOfYear:            input.AsOfYear,
		Assumptions:         input.GenerateAssumptions(),
	}

	// Calendar mapping happens here at the boundary, driven by the
	// caller-supplied as-of year; the resolver itself only knows periods.
	if scorecard.IndependencePeriod != nil && input.AsOfYear > 0 {
		year := input.AsOfYear + *scorecard.IndependencePeriod
		result.IndependenceYear = &year
	}

	if input.MonteCarlo != nil {
		mc, err := pe.RunMonteCarlo(input, *input.MonteCarlo)
		if err != nil {
			return nil, fmt.Errorf("monte carlo simulation failed: %w", err)
		}
		result.MonteCarlo = mc
	}

	if pe.Debug {
		pe.Logger.Debugf("PLAN CALCULATION BREAKDOWN:")
		pe.Logger.Debugf("  Total Assets:       $%s", totals.TotalAssets.StringFixed(2))
		pe.Logger.Debugf("  Total Liabilities:  $%s", totals.TotalLiabilities.StringFixed(2))
		pe.Logger.Debugf("  Net Worth:          $%s", totals.NetWorth.StringFixed(2))
		pe.Logger.Debugf("  Passive Income:     $%s", passiveIncome.StringFixed(2))
		pe.Logger.Debugf("  Lifestyle Cost:     $%s", lifestyleCost.StringFixed(2))
		pe.Logger.Debugf("  Progress:           %s%%", scorecard.ProgressPct.StringFixed(0))
		if scorecard.IndependencePeriod != nil {
			pe.Logger.Debugf("  Independence in:    %d years", *scorecard.IndependencePeriod)
		} else {
			pe.Logger.Debugf("  Independence:       beyond %d-year horizon", IndependenceSearchYears)
		}
	}

	return result, nil
}

// sanitizeConfig clamps the projection assumptions to their documented
// domains so a malformed config degrades instead of failing.
func sanitizeConfig(cfg domain.ProjectionConfig) domain.ProjectionConfig {
	cfg.GrowthRatePct = Clamp(cfg.GrowthRatePct, decimal.Zero, GrowthRateMax)
	if cfg.HorizonYears < MinHorizonYears || cfg.HorizonYears > MaxHorizonYears {
		cfg.HorizonYears = DefaultHorizonYears
	}
	if cfg.PeriodicContribution.LessThan(decimal.Zero) {
		cfg.PeriodicContribution = decimal.Zero
	}
	return cfg
}
