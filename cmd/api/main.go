package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillsetu/marketplace-api/internal/api"
	"github.com/skillsetu/marketplace-api/internal/infrastructure/config"
	redisinfra "github.com/skillsetu/marketplace-api/internal/infrastructure/db/redis"
	"github.com/skillsetu/marketplace-api/internal/infrastructure/db/sqlite"
	"github.com/skillsetu/marketplace-api/pkg/logger"
)

// @title           SkillSetu Marketplace API
// @version         1.0
// @description     Learning and job marketplace: auth, courses, jobs, enrollments, applications.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(ctx, cfg.SQLite.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sqlite connection failed")
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if cfg.SeedDemo {
		if err := sqlite.Seed(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
		log.Info().Msg("demo data seeded")
	}

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("marketplace api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
