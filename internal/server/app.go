package server

import (
	"context"
	"fmt"

	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/api"
	"github.com/pageza/skinroutine/backend/internal/database"
	"github.com/pageza/skinroutine/backend/internal/metrics"
	"github.com/pageza/skinroutine/backend/internal/middleware"
	"github.com/pageza/skinroutine/backend/internal/router"
	"github.com/pageza/skinroutine/backend/internal/seed"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App is a fully wired server together with the connections it owns
type App struct {
	Server *Server
	Store  store.Store

	db    *gorm.DB
	redis *redis.Client
	log   *logrus.Logger
}

// Build opens storage, wires the services and returns a server ready to start.
// Redis is optional: without it routine drafts and rate limiting are disabled.
func Build(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{log: log}

	st, err := app.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Store = st

	m := metrics.New()

	var (
		drafts  service.DraftStore
		limiter *middleware.RateLimiter
	)
	if client, err := database.NewRedisClient(cfg, log); err != nil {
		log.WithError(err).Warn("Redis unavailable, routine drafts and rate limiting disabled")
	} else {
		app.redis = client
		drafts = service.NewRedisDraftStore(client)
		limiter = middleware.NewGenerateRateLimiter(client, cfg.GenerateRateLimit, log)
	}

	authService := service.NewAuthService(st, cfg.JWTSecret, cfg.JWTTTL)
	engine := router.SetupRouter(cfg, api.Dependencies{
		Auth:        authService,
		Profile:     service.NewProfileService(st),
		Catalog:     service.NewCatalogService(st),
		Safety:      service.NewSafetyClassifier(st, m),
		Assessments: service.NewAssessmentService(st),
		Routines:    service.NewRoutineService(st, service.NewRoutineComposer(st, m), drafts, m, log),
		Store:       st,
		Limiter:     limiter,
		Metrics:     m,
		Log:         log,
	})

	app.Server = New(cfg, engine, log)
	return app, nil
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StorageDriver == config.DriverMemory {
		mem := store.NewMemoryStore()
		catalog, err := seed.Default()
		if err != nil {
			return nil, err
		}
		if _, err := seed.LoadCatalog(ctx, service.NewCatalogService(mem), catalog, a.log); err != nil {
			return nil, fmt.Errorf("failed to seed memory store: %w", err)
		}
		return mem, nil
	}

	db, err := database.New(cfg, a.log)
	if err != nil {
		return nil, err
	}
	a.db = db
	if err := database.RunMigrations(db, cfg.MigrationsDir, a.log); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store.NewGormStore(db), nil
}

// Close releases the database and Redis connections
func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to close Redis client")
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.WithError(err).Warn("Failed to close database")
			}
		}
	}
}
