package config

import (
	"fmt"
	"os"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.PlanInput
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the plan
	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan input. Plan files are explicit
// user artifacts, so malformed values fail loudly here; free-text form
// input is instead degraded silently by the normalizer.
func (ip *InputParser) ValidatePlan(plan *domain.PlanInput) error {
	if len(plan.Assets) == 0 {
		plan.Assets = domain.DefaultAssetItems()
	}
	if len(plan.Liabilities) == 0 {
		plan.Liabilities = domain.DefaultLiabilityItems()
	}

	for i, item := range plan.Assets {
		if err := ip.validateLineItem(&item); err != nil {
			return fmt.Errorf("asset %d (%s): %w", i, item.Name, err)
		}
	}
	for i, item := range plan.Liabilities {
		if err := ip.validateLineItem(&item); err != nil {
			return fmt.Errorf("liability %d (%s): %w", i, item.Name, err)
		}
	}

	if plan.LifestyleCost.LessThan(decimal.Zero) {
		return fmt.Errorf("lifestyle cost cannot be negative")
	}
	if plan.CurrentPassiveIncome.LessThan(decimal.Zero) {
		return fmt.Errorf("current passive income cannot be negative")
	}
	if plan.AsOfYear < 0 {
		return fmt.Errorf("as-of year cannot be negative")
	}

	if err := ip.validateProjection(&plan.Projection); err != nil {
		return fmt.Errorf("projection validation failed: %w", err)
	}

	if plan.ProgressCeiling.IsZero() {
		plan.ProgressCeiling = calculation.DefaultProgressCeiling
	}
	if plan.ProgressCeiling.LessThan(decimal.Zero) {
		return fmt.Errorf("progress ceiling cannot be negative")
	}

	if plan.MonteCarlo != nil {
		if err := ip.validateMonteCarlo(plan.MonteCarlo); err != nil {
			return fmt.Errorf("monte carlo validation failed: %w", err)
		}
	}

	return nil
}

// validateLineItem validates a single asset or liability slot
func (ip *InputParser) validateLineItem(item *domain.LineItem) error {
	if item.Name == "" {
		return fmt.Errorf("name is required")
	}
	if item.Value.LessThan(decimal.Zero) {
		return fmt.Errorf("value cannot be negative")
	}
	return nil
}

// validateProjection validates the growth assumptions
func (ip *InputParser) validateProjection(cfg *domain.ProjectionConfig) error {
	if cfg.GrowthRatePct.LessThan(decimal.Zero) || cfg.GrowthRatePct.GreaterThan(calculation.GrowthRateMax) {
		return fmt.Errorf("growth rate must be between 0%% and %s%%", calculation.GrowthRateMax.String())
	}
	if cfg.HorizonYears == 0 {
		cfg.HorizonYears = calculation.DefaultHorizonYears
	}
	if cfg.HorizonYears < calculation.MinHorizonYears || cfg.HorizonYears > calculation.MaxHorizonYears {
		return fmt.Errorf("horizon years must be between %d and %d", calculation.MinHorizonYears, calculation.MaxHorizonYears)
	}
	if cfg.PeriodicContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("periodic contribution cannot be negative")
	}
	return nil
}

// validateMonteCarlo validates the optional simulation block
func (ip *InputParser) validateMonteCarlo(cfg *domain.MonteCarloConfig) error {
	if cfg.NumSimulations < 0 {
		return fmt.Errorf("number of simulations cannot be negative")
	}
	if cfg.NumSimulations > 100000 {
		return fmt.Errorf("number of simulations must be at most 100000")
	}
	if cfg.ReturnStdDev.LessThan(decimal.Zero) {
		return fmt.Errorf("return standard deviation cannot be negative")
	}
	return nil
}

// CreateExamplePlan creates an example plan input
func (ip *InputParser) CreateExamplePlan() *domain.PlanInput {
	assets := domain.DefaultAssetItems()
	domain.SetItemValue(assets, "Cash", decimal.NewFromInt(1421000))
	domain.SetItemValue(assets, "Stocks", decimal.NewFromInt(1091000))

	liabilities := domain.DefaultLiabilityItems()
	domain.SetItemValue(liabilities, "Mortgage", decimal.NewFromInt(607000))

	return &domain.PlanInput{
		Assets:               assets,
		Liabilities:          liabilities,
		LifestyleCost:        decimal.NewFromInt(100000),
		CurrentPassiveIncome: decimal.NewFromInt(50000),
		Projection: domain.ProjectionConfig{
			GrowthRatePct:        decimal.NewFromInt(7),
			HorizonYears:         calculation.DefaultHorizonYears,
			PeriodicContribution: decimal.Zero,
		},
		ProgressCeiling: calculation.DefaultProgressCeiling,
		AsOfYear:        2026,
		MonteCarlo: &domain.MonteCarloConfig{
			NumSimulations: 1000,
			ReturnStdDev:   decimal.NewFromInt(12),
			Seed:           12345,
		},
	}
}

// WriteExampleFile writes the example plan to a YAML file
func (ip *InputParser) WriteExampleFile(filename string) error {
	plan := ip.CreateExamplePlan()
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
