package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func seq(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestFindCrossingSmallestPeriod(t *testing.T) {
	tracked := seq(50, 90, 110, 130)

	period, found := FindCrossing(tracked, decimal.NewFromInt(100))
	if !found {
		t.Fatalf("expected a crossing")
	}
	if period != 2 {
		t.Fatalf("expected the smallest crossing period 2, got %d", period)
	}
}

func TestFindCrossingAtPeriodZero(t *testing.T) {
	tracked := seq(150, 160, 170)

	period, found := FindCrossing(tracked, decimal.NewFromInt(100))
	assert.True(t, found)
	assert.Equal(t, 0, period)
}

func TestFindCrossingZeroTargetNeverFound(t *testing.T) {
	// A target of zero is unset, never "already achieved"
	tracked := seq(50, 90, 110)

	_, found := FindCrossing(tracked, decimal.Zero)
	assert.False(t, found)

	_, found = FindCrossing(tracked, decimal.NewFromInt(-100))
	assert.False(t, found)
}

func TestFindCrossingBeyondHorizon(t *testing.T) {
	tracked := seq(10, 11, 12)

	_, found := FindCrossing(tracked, decimal.NewFromInt(1000))
	assert.False(t, found)
}

func TestResolveIndependenceDoublingAtSevenPercent(t *testing.T) {
	// 50000 * 1.07^t >= 100000 first at t = ceil(ln2 / ln1.07) = 11
	period, found := ResolveIndependence(
		decimal.NewFromInt(50000), decimal.NewFromInt(7), decimal.Zero,
		decimal.NewFromInt(100000), IndependenceSearchYears)

	assert.True(t, found)
	assert.Equal(t, 11, period)
}

func TestResolveIndependenceSearchBoundDecoupledFromDisplay(t *testing.T) {
	// Crossing at t=35 is invisible to a 20-year chart but inside the search bound
	period, found := ResolveIndependence(
		decimal.NewFromInt(10000), decimal.NewFromInt(7), decimal.Zero,
		decimal.NewFromInt(100000), IndependenceSearchYears)

	assert.True(t, found)
	assert.Greater(t, period, DefaultHorizonYears)
	assert.LessOrEqual(t, period, IndependenceSearchYears)
}

func TestResolveIndependenceNotWithinBound(t *testing.T) {
	_, found := ResolveIndependence(
		decimal.NewFromInt(100), decimal.Zero, decimal.Zero,
		decimal.NewFromInt(100000), IndependenceSearchYears)

	assert.False(t, found)
}

func TestResolveIndependenceDefaultsBound(t *testing.T) {
	period, found := ResolveIndependence(
		decimal.NewFromInt(50000), decimal.NewFromInt(7), decimal.Zero,
		decimal.NewFromInt(100000), 0)

	assert.True(t, found)
	assert.Equal(t, 11, period)
}
