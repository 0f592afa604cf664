package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leadscore/internal/api"
	"leadscore/internal/api/handler/v1handler"
	"leadscore/internal/config"
	"leadscore/internal/leads"
	"leadscore/internal/scoring"
	"leadscore/internal/worker"
	"leadscore/pkg/enrichment"
	"leadscore/pkg/enrichment/httpapi"
	"leadscore/pkg/logger"
)

// loadEngine builds the scoring engine from the configured model, falling
// back to the built-in default model when no path is set.
func loadEngine(ctx context.Context, cfg *config.Config) *scoring.Engine {
	var (
		model *scoring.Model
		err   error
	)
	if cfg.Scoring.ModelPath != "" {
		model, err = scoring.LoadModel(cfg.Scoring.ModelPath)
	} else {
		model, err = scoring.DefaultModel()
	}
	if err != nil {
		logger.Fatal(ctx, "could not load scoring model", zap.Error(err))
	}

	logger.Info(ctx, "loaded scoring model",
		zap.String("name", model.Name),
		zap.String("version", model.Version))

	return scoring.NewEngine(model)
}

// getEnricher returns the configured enrichment client, or nil when
// enrichment is not configured.
func getEnricher(cfg *config.Config) enrichment.Enricher {
	if cfg.Enrichment.BaseURL == "" {
		return nil
	}

	return httpapi.New(&http.Client{Timeout: cfg.Enrichment.Timeout},
		cfg.Enrichment.BaseURL,
		cfg.Enrichment.APIKey)
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background batch workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			engine := loadEngine(ctx, cfg)
			options := leads.NewOptions(cfg)
			service := leads.New(engine, getEnricher(cfg), strg, options)

			riverClient, err := worker.Start(ctx, strg.Pool, engine, strg, options, cfg.Batch.MaxQueueWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start batch workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Leads: service},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping batch workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop batch workers", zap.Error(err))
			}
		},
	}

	return cmd
}
