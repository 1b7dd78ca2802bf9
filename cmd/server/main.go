package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"medbridge/internal/config"
	"medbridge/internal/core"
	"medbridge/internal/db"
	httpserver "medbridge/internal/http"
	"medbridge/internal/llm"
)

func main() {
	base, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := base.Sugar()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalw("failed to open store", "error", err, "dsn", cfg.DatabaseDSN)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Errorw("failed to close store", "error", err)
		}
	}()

	// Without a credential the resolver degrades to dictionary-only mode.
	var capability llm.Translator
	if cfg.GroqAPIKey != "" {
		capability = llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	}
	resolver := core.NewResolver(capability, logger)
	logger.Infow("translation pipeline ready", "mode", resolver.Mode())

	srv, err := httpserver.NewServer(store, resolver, logger, cfg.DoctorLang, cfg.PatientLang)
	if err != nil {
		logger.Fatalw("failed to construct server", "error", err)
	}

	logger.Infow("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}
