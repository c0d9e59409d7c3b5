package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/volei-torneio/brackets"
	"github.com/Dosada05/volei-torneio/config"
	"github.com/Dosada05/volei-torneio/db"
	"github.com/Dosada05/volei-torneio/metrics"
	"github.com/Dosada05/volei-torneio/repositories"
	"github.com/Dosada05/volei-torneio/services"
	"github.com/Dosada05/volei-torneio/storage"
)

// app holds the wiring shared by every command.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	metrics    *metrics.Recorder
	tournament *services.TournamentService
	close      func()
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, notifier services.Notifier) (*app, error) {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	engine := brackets.NewEngine(brackets.WithLogger(logger))
	tournament := services.NewTournamentService(store, engine, notifier, recorder, logger, cfg.SaveRetries)

	return &app{
		cfg:        cfg,
		logger:     logger,
		metrics:    recorder,
		tournament: tournament,
		close:      closeStore,
	}, nil
}

// openStore builds the document backend selected by STORE_BACKEND.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.DocumentStore, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendJSONBin:
		store, err := storage.NewJSONBinDocumentStore(storage.JSONBinConfig{
			BaseURL: cfg.JSONBinBaseURL,
			BinID:   cfg.JSONBinBinID,
			APIKey:  cfg.JSONBinAPIKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize JSONBin store: %w", err)
		}
		logger.Info("JSONBin document store initialized", slog.String("bin_id", cfg.JSONBinBinID))
		return store, noop, nil

	case config.BackendR2:
		store, err := storage.NewCloudflareR2DocumentStore(ctx, storage.CloudflareR2StoreConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			DocumentKey:     cfg.R2DocumentKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Cloudflare R2 store: %w", err)
		}
		logger.Info("Cloudflare R2 document store initialized", slog.String("bucket", cfg.R2BucketName))
		return store, noop, nil

	case config.BackendPostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DBTimeout, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		repo := repositories.NewPostgresDocumentRepository(dbConn, cfg.DocumentID)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = dbConn.Close()
			return nil, nil, err
		}
		logger.Info("database connection established", slog.String("document_id", cfg.DocumentID))
		return repo, func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}, nil

	default:
		logger.Warn("using in-memory document store, data is lost on exit")
		return storage.NewMemoryDocumentStore(), noop, nil
	}
}
