package main

import (
	"context"
	"log"

	"github.com/untels-dev/portal-core/internal/repository"
	"github.com/untels-dev/portal-core/internal/seed"
	"github.com/untels-dev/portal-core/pkg/blobstore"
	"github.com/untels-dev/portal-core/pkg/config"
	"github.com/untels-dev/portal-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	store, err := openStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "backend", cfg.Store.Backend, "error", err)
	}
	store = blobstore.Instrument(store, blobstore.NewMetrics())

	ctx := context.Background()

	if cfg.Seed.Enabled {
		if err := seed.New(store, logr).Run(ctx); err != nil {
			logr.Sugar().Fatalw("seed failed", "error", err)
		}
	}

	surveys, _ := repository.NewSurveyRepository(store).List(ctx)
	events, _ := repository.NewEventRepository(store).List(ctx)
	notices, _ := repository.NewNoticeRepository(store).List(ctx)
	graduates, _ := repository.NewGraduateRepository(store).List(ctx)
	offers, _ := repository.NewOfferRepository(store).List(ctx)

	logr.Sugar().Infow("portal store ready",
		"backend", cfg.Store.Backend,
		"surveys", len(surveys),
		"events", len(events),
		"notices", len(notices),
		"graduates", len(graduates),
		"offers", len(offers),
	)
}

func openStore(cfg *config.Config) (blobstore.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return blobstore.NewMemory(), nil
	case config.BackendRedis:
		return blobstore.NewRedis(cfg.Redis)
	default:
		return blobstore.NewFile(cfg.Store.Dir)
	}
}
