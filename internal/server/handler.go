package server

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/internal/domain"
)

// Handler serves plan calculations over HTTP
type Handler struct {
	Engine *calculation.PlanEngine
}

// NewHandler creates a handler backed by a fresh plan engine
func NewHandler() *Handler {
	return &Handler{Engine: calculation.NewPlanEngine()}
}

// Route dispatches requests by path
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/plan":
		h.HandleCalculation(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// HandleCalculation runs one plan calculation for a POSTed request
func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	started := time.Now().UTC()
	input := buildPlanInput(&req)
	result, err := h.Engine.RunPlan(context.Background(), input)
	completed := time.Now().UTC()

	if err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := CalculationResponse{
		CalculationMetadata: CalculationMetadata{
			CalculationStartedAt:   started.Format(time.RFC3339Nano),
			CalculationCompletedAt: completed.Format(time.RFC3339Nano),
			CalculationDurationMs:  completed.Sub(started).Milliseconds(),
			CalculationOutcome:     OutcomeSuccess,
		},
		CalculationResult: result,
	}

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

// buildPlanInput normalizes the raw request into engine inputs. Every field
// degrades rather than fails: the calculation endpoint is total, like the
// engine underneath it.
func buildPlanInput(req *CalculationRequest) *domain.PlanInput {
	input := &domain.PlanInput{
		Assets:               normalizeItems(req.Assets, domain.DefaultAssetItems()),
		Liabilities:          normalizeItems(req.Liabilities, domain.DefaultLiabilityItems()),
		LifestyleCost:        calculation.NormalizeCurrency(req.LifestyleCost),
		CurrentPassiveIncome: calculation.NormalizeCurrency(req.CurrentPassiveIncome),
		Projection: domain.ProjectionConfig{
			GrowthRatePct:        calculation.NormalizePercent(req.GrowthRatePct, decimal.Zero, calculation.GrowthRateMax),
			HorizonYears:         req.HorizonYears,
			PeriodicContribution: calculation.NormalizeCurrency(req.PeriodicContribution),
		},
		ProgressCeiling: calculation.NormalizePercent(req.ProgressCeiling, decimal.Zero, calculation.ExtendedProgressCeiling),
		AsOfYear:        req.AsOfYear,
		MonteCarlo:      req.MonteCarlo,
	}
	return input
}

func normalizeItems(items []LineItemRequest, fallback []domain.LineItem) []domain.LineItem {
	if len(items) == 0 {
		return fallback
	}
	normalized := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, domain.NewLineItem(item.Name, calculation.NormalizeCurrency(item.Value)))
	}
	return normalized
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
