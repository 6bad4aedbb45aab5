// @title           Catalog Admin API
// @version         1.0
// @description     Administration API for an e-commerce catalog: products, categories, galleries, feedback, and accounts.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/amanj01/catalog-admin/internal/api"
	"github.com/amanj01/catalog-admin/internal/core/service"
	mongodb "github.com/amanj01/catalog-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/amanj01/catalog-admin/internal/infrastructure/db/redis"
	"github.com/amanj01/catalog-admin/internal/infrastructure/queue"
	"github.com/amanj01/catalog-admin/internal/infrastructure/storage"
	"github.com/amanj01/catalog-admin/internal/pkg/config"
	"github.com/amanj01/catalog-admin/internal/pkg/token"
	"github.com/amanj01/catalog-admin/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Auth ---
	issuer := token.NewIssuer(cfg.JWTSecret)
	limiter := redisdb.NewLoginLimiter(rdb)
	authService := service.NewAuthService(userRepo, issuer, limiter, cfg.TokenTTL(), log)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.ResetOnBoot); err != nil {
		log.Fatal().Err(err).Msg("default admin bootstrap failed")
	}

	// --- Audit trail ---
	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Upload store ---
	files, err := storage.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes())
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	e := api.NewRouter(api.RouterDeps{
		DB:     db,
		Redis:  rdb,
		Cfg:    cfg,
		Issuer: issuer,
		Auth:   authService,
		Files:  files,
		Audit:  dispatcher,
		Log:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
