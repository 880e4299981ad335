// Package app wires the application together: config, storage, cache,
// event bus, and the context services.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	analyticsApp "github.com/ariahq/aria/internal/analytics/application"
	"github.com/ariahq/aria/internal/analytics/application/coherence"
	plannerServices "github.com/ariahq/aria/internal/planner/application/services"
	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	trackingApp "github.com/ariahq/aria/internal/tracking/application"
	"github.com/ariahq/aria/internal/tracking/domain"
	"github.com/ariahq/aria/internal/tracking/infrastructure/persistence"
	"github.com/ariahq/aria/migrations"
	"github.com/ariahq/aria/pkg/config"
	"github.com/ariahq/aria/pkg/observability"
)

// Container holds the wired application.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	Cache     cache.Cache
	Bus       *eventbus.InProcessBus
	Publisher eventbus.Publisher

	Tasks        domain.TaskRepository
	Moods        domain.MoodRepository
	Sessions     domain.SessionRepository
	Completions  domain.CompletionRepository
	Productivity domain.ProductivityRepository

	Tracking    *trackingApp.Service
	Analytics   *analyticsApp.Service
	FocusEngine *plannerServices.FocusEngine

	db   *sql.DB
	pool *pgxpool.Pool
}

// NewContainer builds the application from configuration. Writes always
// publish on the in-process bus; when RabbitMQ is configured, events fan out
// to it as well so remote consumers see the same stream.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = observability.NewLogger(observability.DefaultLogConfig())
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NoopMetrics{},
	}

	if err := c.initStorage(ctx, cfg); err != nil {
		return nil, err
	}
	if err := c.initCache(cfg, logger); err != nil {
		c.closeStorage()
		return nil, err
	}
	if err := c.initBus(cfg, logger); err != nil {
		c.closeStorage()
		return nil, err
	}

	ttl := cache.TTLConfig{
		TaskList:     cfg.TaskListCacheTTL,
		Task:         cfg.TaskCacheTTL,
		MoodToday:    cfg.MoodCacheTTL,
		Productivity: cfg.ProductivityTTL,
		Trend:        cfg.TrendCacheTTL,
		Correlation:  cfg.CorrelationTTL,
	}
	c.Tracking = trackingApp.NewService(c.Tasks, c.Moods, c.Completions, c.Cache, ttl, c.Publisher, time.Now)
	c.Analytics = analyticsApp.NewService(c.Tasks, c.Moods, c.Sessions, c.Completions, c.Productivity, c.Cache, ttl, c.Publisher, time.Now)
	c.FocusEngine = plannerServices.NewFocusEngine(time.Now)

	c.Bus.RegisterConsumer(coherence.NewInvalidator(c.Cache, coherence.Config{
		TrendWindowDays: cfg.TrendWindowDays,
		ContextWindows:  cfg.ContextWindows,
	}, logger))

	return c, nil
}

func (c *Container) initStorage(ctx context.Context, cfg *config.Config) error {
	if cfg.UsesPostgres() {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		schema, err := migrations.PostgresSchema()
		if err != nil {
			pool.Close()
			return err
		}
		// pgx prepares statements by default, which disallows scripts;
		// run the schema one statement at a time.
		for _, stmt := range strings.Split(schema, ";") {
			if stmt = strings.TrimSpace(stmt); stmt == "" {
				continue
			}
			if _, err := pool.Exec(ctx, stmt); err != nil {
				pool.Close()
				return fmt.Errorf("apply schema: %w", err)
			}
		}

		c.pool = pool
		c.Tasks = persistence.NewPostgresTaskRepository(pool)
		c.Moods = persistence.NewPostgresMoodRepository(pool)
		c.Sessions = persistence.NewPostgresSessionRepository(pool)
		c.Completions = persistence.NewPostgresCompletionRepository(pool)
		c.Productivity = persistence.NewPostgresProductivityRepository(pool)
		return nil
	}

	db, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	schema, err := migrations.SQLiteSchema()
	if err != nil {
		db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	c.db = db
	c.Tasks = persistence.NewSQLiteTaskRepository(db)
	c.Moods = persistence.NewSQLiteMoodRepository(db)
	c.Sessions = persistence.NewSQLiteSessionRepository(db)
	c.Completions = persistence.NewSQLiteCompletionRepository(db)
	c.Productivity = persistence.NewSQLiteProductivityRepository(db)
	return nil
}

func (c *Container) initCache(cfg *config.Config, logger *slog.Logger) error {
	if !cfg.CacheEnabled {
		c.Cache = cache.NoopCache{}
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	c.Cache = cache.NewRedisCache(client, cache.DefaultRedisCacheConfig(), logger, c.Metrics)
	return nil
}

func (c *Container) initBus(cfg *config.Config, logger *slog.Logger) error {
	c.Bus = eventbus.NewInProcessBus(logger)
	c.Publisher = c.Bus

	if cfg.RabbitMQURL == "" {
		return nil
	}
	remote, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		return fmt.Errorf("connect rabbitmq: %w", err)
	}
	c.Publisher = eventbus.NewFanoutPublisher(c.Bus, remote)
	return nil
}

func (c *Container) closeStorage() {
	if c.db != nil {
		c.db.Close()
	}
	if c.pool != nil {
		c.pool.Close()
	}
}

// Close releases all held connections.
func (c *Container) Close() error {
	var firstErr error
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			firstErr = err
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.pool != nil {
		c.pool.Close()
	}
	return firstErr
}
