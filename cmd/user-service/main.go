package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/usermgmt/user-service/internal/api"
	"github.com/usermgmt/user-service/internal/core/auth"
	"github.com/usermgmt/user-service/internal/core/service"
	"github.com/usermgmt/user-service/internal/infrastructure/config"
	mongodb "github.com/usermgmt/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/usermgmt/user-service/internal/infrastructure/db/redis"
	"github.com/usermgmt/user-service/pkg/logger"
)

// @title           User Management API
// @version         1.0
// @description     User management service with JWT authentication and role-based access control.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	cachedRepo := redisdb.NewCachedUserRepository(userRepo, rdb, log)

	// --- Core ---
	hasher := auth.NewHasher()
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewAuthenticator(codec)

	authService := service.NewAuthService(cachedRepo, hasher, codec, service.DefaultAdmin{
		Name:     cfg.DefaultAdmin.Name,
		Password: cfg.DefaultAdmin.Password,
		Age:      cfg.DefaultAdmin.Age,
	}, log)
	userService := service.NewUserService(cachedRepo, hasher, log)

	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("default admin seeding failed")
	}

	// --- HTTP ---
	// The default registry already holds the custom counters registered by
	// the metrics package; exposing it keeps them on /metrics alongside the
	// HTTP metrics.
	registry := prometheus.DefaultRegisterer.(*prometheus.Registry)

	e := api.NewRouter(api.Dependencies{
		AuthService:   authService,
		UserService:   userService,
		Authenticator: authenticator,
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
		Metrics:       registry,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("user service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("user service stopped")
}
