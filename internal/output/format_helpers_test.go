package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	moneyutil "github.com/finfree/independence-calculator/pkg/decimal"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(moneyutil.NewMoney(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(moneyutil.Zero()))
	assert.Equal(t, "$-150000.00", FormatCurrency(moneyutil.NewMoney(-150000)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "50.00%", FormatPercentage(moneyutil.NewMoney(50)))
	assert.Equal(t, "7.50%", FormatPercentage(moneyutil.NewMoney(7.5)))
}
