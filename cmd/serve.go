package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/config"
	"github.com/Dosada05/volei-torneio/handlers"
	api "github.com/Dosada05/volei-torneio/routes"
	"github.com/Dosada05/volei-torneio/services"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func serveCmd(getConfig func() *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the live update hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), getConfig(), logger)
		},
	}
}

func runServe(parent context.Context, cfg *config.Config, logger *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wsHub := brackets.NewHub(logger)
	a, err := newApp(ctx, cfg, logger, wsHub)
	if err != nil {
		return err
	}
	defer a.close()

	ts := a.tournament
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Document:  handlers.NewDocumentHandler(ts),
		Athlete:   handlers.NewAthleteHandler(services.NewAthleteService(ts)),
		Team:      handlers.NewTeamHandler(services.NewTeamService(ts)),
		Match:     handlers.NewMatchHandler(services.NewMatchService(ts)),
		Bracket:   handlers.NewBracketHandler(services.NewBracketService(ts)),
		Vote:      handlers.NewVoteHandler(services.NewVoteService(ts)),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(ts)),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	}, api.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Metrics:        a.metrics,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return wsHub.Run(gCtx)
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr), slog.String("store", cfg.StoreBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Ожидание сигнала завершения
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application exited")
	return nil
}
