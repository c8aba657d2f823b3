package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnthoniusHendriyanto/blacklist-service/config"
	"github.com/AnthoniusHendriyanto/blacklist-service/db"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/handler"
	repo "github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/repository/postgres"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service"
	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/logger"
	"github.com/charmbracelet/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger.Setup(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storeTimeout := time.Duration(cfg.DBTimeoutSeconds) * time.Second

	if cfg.AutoMigrate {
		if err := db.Migrate(cfg.DBURL); err != nil {
			log.Fatal("failed to apply migrations", "err", err)
		}
		log.Info("migrations applied")
	}

	connectCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	dbPool, err := db.NewPostgresPool(connectCtx, cfg.DBURL, cfg.DBMaxConns)
	cancel()
	if err != nil {
		log.Fatal("failed to connect to database", "err", err)
	}
	defer dbPool.Close()

	blacklistRepo := repo.NewPostgresRepository(dbPool)
	blacklistService := service.NewBlacklistService(blacklistRepo, storeTimeout)
	tokenService := service.NewStaticTokenService(cfg.ExpectedAuthorization())
	blacklistHandler := handler.NewBlacklistHandler(blacklistService)

	app := handler.NewApp(cfg.ProxyHeader)
	handler.RegisterRoutes(app, blacklistHandler, tokenService)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}()

	log.Info("starting blacklist service", "env", cfg.Env, "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
	}
}
