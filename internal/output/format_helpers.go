package output

import (
	"strconv"

	"github.com/finfree/independence-calculator/pkg/decimal"
)

// FormatCurrency formats a money amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Money) string { return amount.Format() }

// FormatPercentage formats a money/decimal value as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Money) string { return amount.StringFixed(2) + "%" }

func intToString(v int) string { return strconv.Itoa(v) }
