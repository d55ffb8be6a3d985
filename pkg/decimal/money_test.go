package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(1234.56)
	assert.Equal(t, "1234.56", m.String())
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("99.99")
	require.NoError(t, err)
	assert.Equal(t, "99.99", m.String())

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100)
	b := NewMoney(40)

	assert.Equal(t, "140.00", a.Add(b).String())
	assert.Equal(t, "60.00", a.Sub(b).String())
	assert.Equal(t, "200.00", a.Mul(decimal.NewFromInt(2)).String())
}

func TestMoneyAnnualMonthly(t *testing.T) {
	monthly := NewMoney(1000)
	assert.Equal(t, "12000.00", monthly.Annual().String())

	annual := NewMoney(120000)
	assert.Equal(t, "10000.00", annual.Monthly().String())
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.LessThan(b))
	assert.True(t, a.GreaterThanOrEqual(NewMoney(10)))
	assert.True(t, a.Equal(NewMoney(10)))
	assert.False(t, a.IsZero())
	assert.True(t, Zero().IsZero())
	assert.True(t, NewMoney(-5).IsNegative())
}

func TestMoneyMinMax(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
}

func TestMoneyRound(t *testing.T) {
	m := NewMoney(10.005)
	assert.Equal(t, "10.01", m.Round().String())
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", NewMoney(1234.5).Format())
}
