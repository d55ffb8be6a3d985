package calculation

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/finfree/independence-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const defaultNumSimulations = 1000

// RunMonteCarlo runs a randomized independence simulation: each path grows
// the current passive income with annual returns drawn from a normal
// distribution centered on the configured growth rate. Success means the
// path reaches the lifestyle-cost target within the display horizon. The
// simulation is deterministic for a fixed seed; the caller supplies the
// seed, the engine never reads entropy on its own.
func (pe *PlanEngine) RunMonteCarlo(input *domain.PlanInput, cfg domain.MonteCarloConfig) (*domain.MonteCarloResult, error) {
	if cfg.NumSimulations <= 0 {
		cfg.NumSimulations = defaultNumSimulations
	}
	if cfg.ReturnStdDev.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("return standard deviation cannot be negative, got %s", cfg.ReturnStdDev.String())
	}

	projCfg := sanitizeConfig(input.Projection)
	horizon := projCfg.HorizonYears
	meanReturn := projCfg.GrowthRatePct.Div(hundred).InexactFloat64()
	stdDev := cfg.ReturnStdDev.Div(hundred).InexactFloat64()
	target := input.LifestyleCost
	initial := input.CurrentPassiveIncome
	if initial.LessThan(decimal.Zero) {
		initial = decimal.Zero
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	finals := make([]decimal.Decimal, cfg.NumSimulations)
	crossings := make([]int, 0, cfg.NumSimulations)
	successes := 0

	for sim := 0; sim < cfg.NumSimulations; sim++ {
		value := initial
		crossedAt := -1
		if target.GreaterThan(decimal.Zero) && value.GreaterThanOrEqual(target) {
			crossedAt = 0
		}
		for year := 1; year <= horizon; year++ {
			annualReturn := meanReturn + stdDev*rng.NormFloat64()
			if annualReturn < -1 {
				annualReturn = -1
			}
			value = value.Mul(decimal.NewFromFloat(1 + annualReturn))
			if value.LessThan(decimal.Zero) {
				value = decimal.Zero
			}
			if crossedAt < 0 && target.GreaterThan(decimal.Zero) && value.GreaterThanOrEqual(target) {
				crossedAt = year
			}
		}
		finals[sim] = value
		if crossedAt >= 0 {
			successes++
			crossings = append(crossings, crossedAt)
		}
	}

	sort.Slice(finals, func(i, j int) bool { return finals[i].LessThan(finals[j]) })

	result := &domain.MonteCarloResult{
		NumSimulations: cfg.NumSimulations,
		SuccessRate: decimal.NewFromInt(int64(successes)).
			Div(decimal.NewFromInt(int64(cfg.NumSimulations))).
			Mul(hundred),
		PercentileRanges: domain.PercentileRanges{
			P10: percentile(finals, 10),
			P25: percentile(finals, 25),
			P50: percentile(finals, 50),
			P75: percentile(finals, 75),
			P90: percentile(finals, 90),
		},
	}

	if len(crossings) > 0 {
		sort.Ints(crossings)
		median := crossings[len(crossings)/2]
		result.MedianIndependencePeriod = &median
	}

	return result, nil
}

// percentile returns the value at the given percentile of a sorted slice
func percentile(sorted []decimal.Decimal, p int) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
