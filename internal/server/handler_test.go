package server

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func postPlan(t *testing.T, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/v1/plan")
	ctx.Request.SetBodyString(body)

	NewHandler().Route(ctx)
	return ctx
}

func TestHandleCalculation(t *testing.T) {
	ctx := postPlan(t, `{
		"assets": [
			{"name": "Cash", "value": "$1,421,000"},
			{"name": "Stocks", "value": "1091000"}
		],
		"liabilities": [
			{"name": "Mortgage", "value": "607000"}
		],
		"lifestyle_cost": "100000",
		"current_passive_income": "50000",
		"growth_rate_pct": "7",
		"horizon_years": 20,
		"as_of_year": 2026
	}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.Equal(t, OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	require.NotNil(t, resp.CalculationResult)
	assert.True(t, resp.CalculationResult.Totals.TotalAssets.Equal(decimal.NewFromInt(2512000)))
	assert.True(t, resp.CalculationResult.Totals.NetWorth.Equal(decimal.NewFromInt(1905000)))
	require.NotNil(t, resp.CalculationResult.Scorecard.IndependencePeriod)
	assert.Equal(t, 11, *resp.CalculationResult.Scorecard.IndependencePeriod)
	require.NotNil(t, resp.CalculationResult.IndependenceYear)
	assert.Equal(t, 2037, *resp.CalculationResult.IndependenceYear)
}

func TestHandleCalculationMalformedFieldsDegrade(t *testing.T) {
	// Malformed numbers degrade to zero instead of failing the request
	ctx := postPlan(t, `{
		"lifestyle_cost": "abc",
		"current_passive_income": "-500",
		"growth_rate_pct": "not a rate"
	}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.CalculationResult.Totals.TotalAssets.IsZero())
	assert.True(t, resp.CalculationResult.Scorecard.ProgressPct.IsZero())
	assert.Nil(t, resp.CalculationResult.Scorecard.IndependencePeriod)
}

func TestHandleCalculationInvalidJSON(t *testing.T) {
	ctx := postPlan(t, `{not json`)

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
}

func TestHandleCalculationMethodNotAllowed(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/v1/plan")

	NewHandler().Route(ctx)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestRouteHealthz(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/healthz")

	NewHandler().Route(ctx)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}

func TestRouteNotFound(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/v2/unknown")

	NewHandler().Route(ctx)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
