package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/malhotra1432/rasa-1/pkg/adapters/httpapi"
	"github.com/malhotra1432/rasa-1/pkg/adapters/memory"
	redisAdapter "github.com/malhotra1432/rasa-1/pkg/adapters/redis"
	sqlAdapter "github.com/malhotra1432/rasa-1/pkg/adapters/sql"
	"github.com/malhotra1432/rasa-1/pkg/importers"
	"github.com/malhotra1432/rasa-1/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the training data and trackers over HTTP",
	Long:  `Starts an HTTP server exposing the combined training data artifacts, dialogue tracker CRUD, and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		importer, err := loadImporter(cmd, logger)
		if err != nil {
			return fmt.Errorf("failed to load training data: %w", err)
		}
		instrumented := importers.NewInstrumentedImporter(importer, prometheus.DefaultRegisterer)

		trackers, err := buildTrackerStore(cmd)
		if err != nil {
			return err
		}

		handler := httpapi.NewHandler(instrumented, trackers, httpapi.WithLogger(logger))
		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("failed to stop server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

// buildTrackerStore picks the tracker backend from the --store flag.
func buildTrackerStore(cmd *cobra.Command) (ports.TrackerStore, error) {
	backend, _ := cmd.Flags().GetString("store")
	switch backend {
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		return redisAdapter.New(addr, "", 0), nil
	case "postgres":
		dsn, _ := cmd.Flags().GetString("postgres-dsn")
		if dsn == "" {
			return nil, fmt.Errorf("--postgres-dsn is required with --store postgres")
		}
		return sqlAdapter.New(cmd.Context(), dsn)
	default:
		return nil, fmt.Errorf("unknown store %q: want memory, redis, or postgres", backend)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("store", "memory", "Tracker store backend: memory, redis, or postgres")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (with --store redis)")
	serveCmd.Flags().String("postgres-dsn", "", "Postgres DSN (with --store postgres)")
}
