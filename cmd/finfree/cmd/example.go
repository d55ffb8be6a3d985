package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finfree/independence-calculator/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example plan file",
	Long:  `Example writes a starter plan.yaml with sample assets, liabilities and growth assumptions.`,
	RunE:  runExample,
}

var examplePath string

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVarP(&examplePath, "output", "o", "plan.yaml", "path for the example plan file")
}

func runExample(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	if err := parser.WriteExampleFile(examplePath); err != nil {
		return err
	}
	fmt.Printf("Example plan written to %s\n", examplePath)
	return nil
}
