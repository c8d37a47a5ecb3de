package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/outliner/internal/api"
	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/pipeline"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the outline extraction HTTP server",
	Long: `Start the HTTP API server.

The server provides:
  /health                    - Health check
  /api/outline               - Synchronous single-document extraction
  /api/outline/batch         - Asynchronous multi-document extraction
  /api/outline/jobs/{jobID}  - Job status and results

Examples:
  outliner serve               # Start on default port 8085
  outliner serve --port 3000   # Start on custom port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := config.Load()
		if servePort != "" {
			cfg.Port = servePort
		}

		orch := pipeline.NewOrchestrator(cfg, log)
		orch.Start(ctx)

		srv := api.NewServer(orch, log, cfg)
		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			log.Info("shutting down...")

			orch.Stop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting outliner", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default: $PORT or 8085)")

	rootCmd.AddCommand(serveCmd)
}
