package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/webis-de/clueweb22/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and corpus over HTTP",
	Long: `Start an HTTP API server exposing the dataset catalog, per-dataset
document counts, and document lookup by ClueWeb22 ID.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}

		srv := server.New(registry, Version, serveAddr)
		srv.Start(cmd.Context())

		<-cmd.Context().Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080",
		"address to listen on")
	rootCmd.AddCommand(serveCmd)
}
