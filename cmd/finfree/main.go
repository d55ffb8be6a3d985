package main

import (
	"os"

	"github.com/finfree/independence-calculator/cmd/finfree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
