package server

import (
	"github.com/finfree/independence-calculator/internal/domain"
)

// LineItemRequest is one asset or liability slot as submitted by a client.
// Values arrive as free text and run through the input normalizer, so "$1,421,000"
// and "1421000" are equivalent and malformed input degrades to zero.
type LineItemRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CalculationRequest is the inbound payload for a plan calculation
type CalculationRequest struct {
	Assets               []LineItemRequest        `json:"assets"`
	Liabilities          []LineItemRequest        `json:"liabilities"`
	LifestyleCost        string                   `json:"lifestyle_cost"`
	CurrentPassiveIncome string                   `json:"current_passive_income"`
	GrowthRatePct        string                   `json:"growth_rate_pct"`
	HorizonYears         int                      `json:"horizon_years"`
	PeriodicContribution string                   `json:"periodic_contribution"`
	ProgressCeiling      string                   `json:"progress_ceiling"`
	AsOfYear             int                      `json:"as_of_year"`
	MonteCarlo           *domain.MonteCarloConfig `json:"monte_carlo,omitempty"`
}

// CalculationResponse wraps the plan result with calculation metadata
type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   *domain.PlanResult  `json:"calculation_result"`
}

// CalculationMetadata describes one calculation run
type CalculationMetadata struct {
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
