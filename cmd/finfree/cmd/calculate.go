package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finfree/independence-calculator/internal/calculation"
	"github.com/finfree/independence-calculator/internal/config"
	"github.com/finfree/independence-calculator/internal/output"
	"github.com/finfree/independence-calculator/pkg/dateutil"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run a full plan calculation from a YAML plan file",
	Long: `Calculate loads a plan file, computes net worth, projection series,
the freedom scorecard and (if configured) a Monte Carlo simulation, then
prints the result in the chosen format.

Example:
  finfree calculate -p plan.yaml -f console
  finfree calculate -p plan.yaml -f json -o report`,
	RunE: runCalculate,
}

var (
	calcPlanPath string
	calcFormat   string
	calcOutFile  bool
	calcDebug    bool
)

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().StringVarP(&calcPlanPath, "plan", "p", "plan.yaml", "path to YAML plan file")
	calculateCmd.Flags().StringVarP(&calcFormat, "format", "f", "console", "output format (console, json, csv)")
	calculateCmd.Flags().BoolVarP(&calcOutFile, "output-file", "o", false, "write output to a timestamped report file")
	calculateCmd.Flags().BoolVar(&calcDebug, "debug", false, "enable debug output")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(calcPlanPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	if plan.AsOfYear == 0 {
		plan.AsOfYear = dateutil.CurrentYear(time.Now())
	}

	engine := calculation.NewPlanEngine()
	engine.Debug = calcDebug
	if calcDebug {
		engine.SetLogger(stdLogger{})
	}

	result, err := engine.RunPlan(context.Background(), plan)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	formatter := output.GetFormatterByName(calcFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", calcFormat, output.AvailableFormatterNames())
	}

	if calcOutFile {
		filename, err := output.WriteFormatted(formatter, result, output.NormalizeFormatName(calcFormat))
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// stdLogger routes engine debug output through the standard logger
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
