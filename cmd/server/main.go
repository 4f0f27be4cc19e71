// Command server runs the RC verification gateway: an HTTP API that proxies
// vehicle registration lookups to the upstream provider and caches successful
// results in SQLite for read-through serving.
//
//	@title          RC Gateway API
//	@version        1.0
//	@description    Vehicle registration (RC) verification gateway with a read-through cache.
//	@BasePath       /api
//
//	@contact.name   RTO Link
//	@contact.url    https://github.com/rtolink/go-rc-gateway
//
//	@securityDefinitions.apikey BearerAuth
//	@in             header
//	@name           Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/rtolink/go-rc-gateway/docs"
	"github.com/rtolink/go-rc-gateway/internal/config"
	"github.com/rtolink/go-rc-gateway/internal/domain"
	httpapi "github.com/rtolink/go-rc-gateway/internal/http"
	"github.com/rtolink/go-rc-gateway/internal/observability"
	"github.com/rtolink/go-rc-gateway/internal/repo"
	"github.com/rtolink/go-rc-gateway/internal/sysutil"
	"github.com/rtolink/go-rc-gateway/internal/upstream"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	appVersion := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
	log.Info().Str("version", appVersion).Str("port", cfg.Port).Msg("starting rc gateway")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, appVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Table name must be fixed before any query (including AutoMigrate) runs.
	domain.SetRCTableName(cfg.RCTable)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	if cfg.Upstream.BaseURL == "" {
		log.Warn().Msg("UPSTREAM_BASE_URL is not set; verification requests will fail upstream")
	}
	fetcher := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RCPath, cfg.Upstream.Timeout)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, fetcher, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("rc gateway stopped")
}
