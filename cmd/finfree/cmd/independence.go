package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/pkg/dateutil"
	moneyutil "github.com/finfree/independence-calculator/pkg/decimal"
)

var independenceCmd = &cobra.Command{
	Use:   "independence",
	Short: "Find the first year passive income covers lifestyle cost",
	Long: `Independence compounds current passive income forward and reports the
first year it meets or exceeds the lifestyle-cost target, searching up to
50 years regardless of any chart horizon.

Example:
  finfree independence --income 50000 --target 100000 --rate 7`,
	RunE: runIndependence,
}

var (
	indIncome       string
	indTarget       string
	indRate         string
	indContribution string
	indAsOfYear     int
)

func init() {
	rootCmd.AddCommand(independenceCmd)

	independenceCmd.Flags().StringVar(&indIncome, "income", "0", "current annual passive income (currency)")
	independenceCmd.Flags().StringVar(&indTarget, "target", "0", "annual lifestyle cost target (currency)")
	independenceCmd.Flags().StringVar(&indRate, "rate", "7", "annual growth rate percent (0-15)")
	independenceCmd.Flags().StringVar(&indContribution, "contribution", "0", "annual contribution to passive income base (currency)")
	independenceCmd.Flags().IntVar(&indAsOfYear, "as-of-year", 0, "anchor calendar year (0 = current year)")
}

func runIndependence(cmd *cobra.Command, args []string) error {
	income := calculation.NormalizeCurrency(indIncome)
	target := calculation.NormalizeCurrency(indTarget)
	rate := calculation.NormalizePercent(indRate, decimal.Zero, calculation.GrowthRateMax)
	contribution := calculation.NormalizeCurrency(indContribution)

	if target.IsZero() {
		return fmt.Errorf("a positive --target is required")
	}

	asOfYear := indAsOfYear
	if asOfYear == 0 {
		asOfYear = dateutil.CurrentYear(time.Now())
	}

	progress := calculation.ProgressPct(income, target, calculation.DefaultProgressCeiling)
	fmt.Printf("Passive income: %s / year\n", moneyutil.NewMoneyFromDecimal(income).Format())
	fmt.Printf("Lifestyle cost: %s / year\n", moneyutil.NewMoneyFromDecimal(target).Format())
	fmt.Printf("Freedom progress: %s%%\n", progress.StringFixed(0))

	period, found := calculation.ResolveIndependence(income, rate, contribution, target, calculation.IndependenceSearchYears)
	if !found {
		fmt.Printf("Independence not reached within %d years at %s%% growth\n",
			calculation.IndependenceSearchYears, rate.StringFixed(1))
		return nil
	}

	fmt.Printf("Independence in %d years (%d) at %s%% growth\n",
		period, dateutil.PeriodToCalendarYear(asOfYear, period), rate.StringFixed(1))
	return nil
}
