package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/tender-normalizer/internal/api"
	"github.com/ougirez/tender-normalizer/internal/config"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/migrations"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/xpgx"
	"github.com/ougirez/tender-normalizer/internal/service/fixer"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, err)
	}
	if err = logger.Init(cfg.LogLevel, cfg.LogEncoding); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := xpgx.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	pgxPool, _ := xpgx.PgxPool(pool)
	if err = migrations.Run(ctx, pgxPool); err != nil {
		logger.Fatal(ctx, err)
	}

	st := store.NewStore(pool)
	svc, err := api.NewAPIService(
		st,
		normalizer.NewNormalizerService(st, mapper.NewRegistry(), cfg.TranslationFactory(), cfg.NormalizerOptions()),
		fixer.NewFixerService(st),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go func() {
		if serveErr := svc.Serve(cfg.APIAddr); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Fatal(ctx, serveErr)
		}
	}()
	logger.Infof(ctx, "api: listening on %s", cfg.APIAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err = svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "api: shutdown: %v", err)
	}
}
