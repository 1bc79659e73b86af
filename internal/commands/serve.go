package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/api"
	"github.com/saldo-dev/saldo/internal/books"
	"github.com/saldo-dev/saldo/internal/config"
	"github.com/saldo-dev/saldo/internal/journal"
	"github.com/saldo-dev/saldo/internal/logging"
	"github.com/saldo-dev/saldo/internal/suggest"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bookkeeping HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to saldo.yaml (defaults used when omitted)")

	return cmd
}

func runServe(cfg *config.Config) error {
	log, err := logging.NewLogger(cfg.Server.Mode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Wiring: store first, then the registry bound to it, then services.
	store := journal.NewStore()
	registry := accounts.NewRegistry(store)
	if cfg.Chart.SeedDefaults {
		if err := registry.SeedDefaults(); err != nil {
			return fmt.Errorf("seeding default chart: %w", err)
		}
	}
	poster := journal.NewService(registry, store)
	booksSvc := books.NewService(registry, poster)
	validator := suggest.NewValidator(registry, poster, log)

	router := api.NewRouter(api.Deps{
		Registry:  registry,
		Store:     store,
		Poster:    poster,
		Books:     booksSvc,
		Validator: validator,
		Log:       log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("saldo listening", zap.String("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
