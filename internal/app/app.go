package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-habits/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habits/internal/config"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
	"github.com/comitanigiacomo/kanso-habits/internal/core/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// App wires the store, its slot backend and the services on top of it.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Slot   domain.Slot
	Store  *repository.SlotHabitStore
	Worker *workers.SaveWorker
	Habits *services.HabitService
	Stats  *services.StatsService

	DB    *sqlx.DB
	Redis *redis.Client

	started bool
	cancel  context.CancelFunc
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	slot, err := a.openSlot(ctx)
	if err != nil {
		a.closeConnections()
		return nil, err
	}
	a.Slot = slot

	a.Store = repository.NewSlotHabitStore(slot, logger)
	if err := a.Store.Load(ctx); err != nil {
		a.closeConnections()
		return nil, err
	}

	clock := services.SystemClock(cfg.Location)
	a.Worker = workers.NewSaveWorker(a.Store, logger)
	a.Habits = services.NewHabitService(a.Store, a.Worker, clock, cfg.UndoWindow, logger)
	a.Stats = services.NewStatsService(a.Store, clock)

	return a, nil
}

func (a *App) openSlot(ctx context.Context) (domain.Slot, error) {
	cfg := a.Config

	switch cfg.Backend {
	case config.BackendPostgres:
		a.Logger.Info("connecting to database", zap.String("host", cfg.DB.Host), zap.String("db", cfg.DB.Name))

		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DB.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		a.DB = db

		pg := repository.NewPostgresSlot(db, cfg.DB.Table, cfg.StorageKey)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}

		if !cfg.RedisCache {
			return pg, nil
		}
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		return repository.NewCachedSlot(pg, rdb, cfg.StorageKey, a.Logger), nil

	case config.BackendRedis:
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		return repository.NewRedisSlot(rdb, cfg.StorageKey), nil

	default:
		return repository.NewFileSlot(cfg.DataDir, cfg.StorageKey)
	}
}

// Start runs the background save worker until Close.
func (a *App) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	a.Worker.Start(ctx)
	a.started = true
}

// Ping checks the connections behind the slot.
func (a *App) Ping(ctx context.Context) map[string]string {
	status := map[string]string{"storage": a.Slot.Name()}
	if a.DB != nil {
		status["database"] = "connected"
		if err := a.DB.PingContext(ctx); err != nil {
			status["database"] = "unreachable"
		}
	}
	if a.Redis != nil {
		status["redis"] = "connected"
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			status["redis"] = "unreachable"
		}
	}
	return status
}

// Close stops the worker, writes unsaved changes and closes connections.
// A session without mutations leaves the slot untouched.
func (a *App) Close(ctx context.Context) error {
	if a.started {
		a.cancel()
		select {
		case <-a.Worker.Done():
		case <-ctx.Done():
		}
	}

	err := a.Worker.Flush(ctx)
	if err != nil {
		a.Logger.Error("final save failed", zap.Error(err))
	}

	a.closeConnections()
	return err
}

func (a *App) closeConnections() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
}
