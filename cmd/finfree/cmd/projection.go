package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/pkg/dateutil"
	moneyutil "github.com/finfree/independence-calculator/pkg/decimal"
)

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Print a year-by-year growth projection table",
	Long: `Projection compounds a starting value over a horizon, optionally with a
periodic contribution, and prints one row per year.

Example:
  finfree projection --initial 50000 --rate 7 --years 20
  finfree projection --initial 0 --rate 5 --years 30 --contribution 12000`,
	RunE: runProjection,
}

var (
	projInitial      string
	projRate         string
	projYears        int
	projContribution string
	projAsOfYear     int
)

func init() {
	rootCmd.AddCommand(projectionCmd)

	projectionCmd.Flags().StringVar(&projInitial, "initial", "0", "starting value (currency)")
	projectionCmd.Flags().StringVar(&projRate, "rate", "7", "annual growth rate percent (0-15)")
	projectionCmd.Flags().IntVar(&projYears, "years", calculation.DefaultHorizonYears, "projection horizon in years")
	projectionCmd.Flags().StringVar(&projContribution, "contribution", "0", "annual contribution (currency)")
	projectionCmd.Flags().IntVar(&projAsOfYear, "as-of-year", 0, "anchor calendar year for the Year column (0 = periods only)")
}

func runProjection(cmd *cobra.Command, args []string) error {
	if projYears < calculation.MinHorizonYears || projYears > calculation.MaxHorizonYears {
		return fmt.Errorf("years must be between %d and %d", calculation.MinHorizonYears, calculation.MaxHorizonYears)
	}

	initial := calculation.NormalizeCurrency(projInitial)
	rate := calculation.NormalizePercent(projRate, decimal.Zero, calculation.GrowthRateMax)
	contribution := calculation.NormalizeCurrency(projContribution)

	values := calculation.Project(initial, rate, projYears, contribution)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if projAsOfYear > 0 {
		fmt.Fprintln(w, "Period\tYear\tValue")
	} else {
		fmt.Fprintln(w, "Period\tValue")
	}
	for t, value := range values {
		if projAsOfYear > 0 {
			fmt.Fprintf(w, "%d\t%d\t%s\n", t, dateutil.PeriodToCalendarYear(projAsOfYear, t), moneyutil.NewMoneyFromDecimal(value).Format())
		} else {
			fmt.Fprintf(w, "%d\t%s\n", t, moneyutil.NewMoneyFromDecimal(value).Format())
		}
	}
	return w.Flush()
}
