package main

import (
	"fmt"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Ad-hoc inspection tool for the projection and independence math.
// Prints the raw compounded series so constant changes can be eyeballed
// against a spreadsheet without going through the CLI.
func main() {
	income := decimal.NewFromInt(50000)
	rate := decimal.NewFromInt(7)
	target := decimal.NewFromInt(100000)
	asOfYear := 2026

	series := calculation.Project(income, rate, calculation.IndependenceSearchYears, decimal.Zero)
	fmt.Println("Passive income projection (50k @ 7%):")
	for t, v := range series {
		marker := ""
		if v.GreaterThanOrEqual(target) {
			marker = "  <- covers lifestyle cost"
		}
		fmt.Printf("  t=%2d (%d): %s%s\n", t, dateutil.PeriodToCalendarYear(asOfYear, t), v.StringFixed(2), marker)
		if marker != "" {
			break
		}
	}

	period, found := calculation.ResolveIndependence(income, rate, decimal.Zero, target, calculation.IndependenceSearchYears)
	fmt.Printf("\nResolved crossing: period=%d found=%v\n", period, found)

	// Same series with an annual contribution, annuity branch included.
	contrib := decimal.NewFromInt(10000)
	withContrib := calculation.Project(income, rate, 10, contrib)
	fmt.Println("\nWith 10k annual contribution (first 10 periods):")
	for t, v := range withContrib {
		fmt.Printf("  t=%2d: %s\n", t, v.StringFixed(2))
	}

	zeroRate := calculation.Project(income, decimal.Zero, 5, contrib)
	fmt.Println("\nZero-rate annuity check (linear growth expected):")
	for t, v := range zeroRate {
		fmt.Printf("  t=%2d: %s\n", t, v.StringFixed(2))
	}
}
