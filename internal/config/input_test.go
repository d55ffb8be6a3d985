package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/internal/domain"
)

func writeTempPlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempPlan(t, `
as_of_year: 2026
lifestyle_cost: 100000
current_passive_income: 50000
assets:
  - name: Cash
    value: 1421000
  - name: Stocks
    value: 1091000
liabilities:
  - name: Mortgage
    value: 607000
projection:
  growth_rate_pct: 7
  horizon_years: 20
  periodic_contribution: 0
`)

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, plan.LifestyleCost.Equal(decimal.NewFromInt(100000)))
	assert.True(t, plan.CurrentPassiveIncome.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 2026, plan.AsOfYear)
	assert.Len(t, plan.Assets, 2)
	assert.True(t, plan.Projection.GrowthRatePct.Equal(decimal.NewFromInt(7)))
	// Ceiling defaults when omitted
	assert.True(t, plan.ProgressCeiling.Equal(calculation.DefaultProgressCeiling))
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	path := writeTempPlan(t, "lifestyle_cost: [not a number")
	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidatePlanRejectsOutOfRange(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name   string
		mutate func(*domain.PlanInput)
	}{
		{"negative lifestyle cost", func(p *domain.PlanInput) { p.LifestyleCost = decimal.NewFromInt(-1) }},
		{"negative passive income", func(p *domain.PlanInput) { p.CurrentPassiveIncome = decimal.NewFromInt(-1) }},
		{"growth rate above max", func(p *domain.PlanInput) { p.Projection.GrowthRatePct = decimal.NewFromInt(16) }},
		{"negative growth rate", func(p *domain.PlanInput) { p.Projection.GrowthRatePct = decimal.NewFromInt(-1) }},
		{"horizon too short", func(p *domain.PlanInput) { p.Projection.HorizonYears = 3 }},
		{"horizon too long", func(p *domain.PlanInput) { p.Projection.HorizonYears = 60 }},
		{"negative contribution", func(p *domain.PlanInput) { p.Projection.PeriodicContribution = decimal.NewFromInt(-100) }},
		{"negative asset", func(p *domain.PlanInput) { p.Assets[0].Value = decimal.NewFromInt(-5) }},
		{"unnamed asset", func(p *domain.PlanInput) { p.Assets[0].Name = "" }},
		{"negative mc stddev", func(p *domain.PlanInput) { p.MonteCarlo.ReturnStdDev = decimal.NewFromInt(-2) }},
		{"excessive mc simulations", func(p *domain.PlanInput) { p.MonteCarlo.NumSimulations = 1000001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := parser.CreateExamplePlan()
			tt.mutate(plan)
			assert.Error(t, parser.ValidatePlan(plan))
		})
	}
}

func TestValidatePlanFillsDefaults(t *testing.T) {
	parser := NewInputParser()
	plan := &domain.PlanInput{
		LifestyleCost: decimal.NewFromInt(80000),
	}
	require.NoError(t, parser.ValidatePlan(plan))

	assert.Len(t, plan.Assets, 6)
	assert.Len(t, plan.Liabilities, 5)
	assert.Equal(t, calculation.DefaultHorizonYears, plan.Projection.HorizonYears)
	assert.True(t, plan.ProgressCeiling.Equal(calculation.DefaultProgressCeiling))
}

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()
	require.NoError(t, parser.ValidatePlan(plan))

	assert.True(t, plan.LifestyleCost.Equal(decimal.NewFromInt(100000)))
	assert.True(t, plan.CurrentPassiveIncome.Equal(decimal.NewFromInt(50000)))
}

func TestWriteExampleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	parser := NewInputParser()
	require.NoError(t, parser.WriteExampleFile(path))

	plan, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, plan.LifestyleCost.Equal(decimal.NewFromInt(100000)))
	require.NotNil(t, plan.MonteCarlo)
	assert.Equal(t, int64(12345), plan.MonteCarlo.Seed)
}
