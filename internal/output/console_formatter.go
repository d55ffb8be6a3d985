package output

import (
	"bytes"
	"fmt"

	"github.com/finfree/independence-calculator/internal/domain"
	moneyutil "github.com/finfree/independence-calculator/pkg/decimal"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Total Assets:      %s\n", FormatCurrency(moneyutil.NewMoneyFromDecimal(result.Totals.TotalAssets)))
	fmt.Fprintf(&buf, "Total Liabilities: %s\n", FormatCurrency(moneyutil.NewMoneyFromDecimal(result.Totals.TotalLiabilities)))
	fmt.Fprintf(&buf, "Net Worth:         %s\n", FormatCurrency(moneyutil.NewMoneyFromDecimal(result.Totals.NetWorth)))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Freedom Progress:  %s%%\n", result.Scorecard.ProgressPct.StringFixed(0))
	switch {
	case result.IndependenceYear != nil:
		fmt.Fprintf(&buf, "Independence:      year %d (in %d years)\n", *result.IndependenceYear, *result.Scorecard.IndependencePeriod)
	case result.Scorecard.IndependencePeriod != nil:
		fmt.Fprintf(&buf, "Independence:      in %d years\n", *result.Scorecard.IndependencePeriod)
	default:
		fmt.Fprintln(&buf, "Independence:      beyond search horizon")
	}

	if mc := result.MonteCarlo; mc != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Monte Carlo (%d runs): success rate %s%%\n", mc.NumSimulations, mc.SuccessRate.StringFixed(1))
		if mc.MedianIndependencePeriod != nil {
			fmt.Fprintf(&buf, "  Median independence: %d years\n", *mc.MedianIndependencePeriod)
		}
		fmt.Fprintf(&buf, "  Final income P10/P50/P90: %s / %s / %s\n",
			FormatCurrency(moneyutil.NewMoneyFromDecimal(mc.PercentileRanges.P10)),
			FormatCurrency(moneyutil.NewMoneyFromDecimal(mc.PercentileRanges.P50)),
			FormatCurrency(moneyutil.NewMoneyFromDecimal(mc.PercentileRanges.P90)))
	}

	if len(result.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range result.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}
