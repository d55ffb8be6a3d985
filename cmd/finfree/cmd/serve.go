package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/finfree/independence-calculator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve plan calculations over HTTP",
	Long: `Serve starts an HTTP server exposing the calculation engine.

Endpoints:
  POST /v1/plan  - run a plan calculation
  GET  /healthz  - liveness check`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Printf("Independence calculator listening on %s", serveAddr)
	return server.ListenAndServe(serveAddr)
}
