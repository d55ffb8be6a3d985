package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finfree",
	Short: "A personal financial independence calculator",
	Long: `Finfree aggregates your assets and liabilities into a net worth figure and
projects future passive income against a lifestyle-cost target to estimate
when financial independence is reached.

It provides tools for:
  - Computing net worth from asset and liability line items
  - Projecting compound growth with optional periodic contributions
  - Resolving the first year passive income covers lifestyle cost
  - Monte Carlo simulation of independence outcomes
  - Serving calculations over HTTP`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
