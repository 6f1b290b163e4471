// Package bootstrap wires configuration into a ready service container.
// Both the HTTP server and the operator CLI start from here.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_finance_manager/internal/core/ports"
	portssvc "github.com/SscSPs/pos_finance_manager/internal/core/ports/services"
	"github.com/SscSPs/pos_finance_manager/internal/core/services"
	"github.com/SscSPs/pos_finance_manager/internal/infrastructure/events"
	"github.com/SscSPs/pos_finance_manager/internal/infrastructure/lock"
	"github.com/SscSPs/pos_finance_manager/internal/platform/accountmap"
	"github.com/SscSPs/pos_finance_manager/internal/platform/config"
	"github.com/SscSPs/pos_finance_manager/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_finance_manager/pkg/database"
	"github.com/SscSPs/pos_finance_manager/pkg/idgen"
)

// App is a wired application. Close releases every connection it opened.
type App struct {
	Services *portssvc.ServiceContainer
	closers  []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// New opens the database, applies migrations when migrate is true and
// builds the services. Redis and Kafka are optional; without them
// recorders rely on the unique idempotency key alone and events are dropped.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (*App, error) {
	app := &App{}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	app.closers = append(app.closers, func() { database.ClosePgxPool(dbPool) })
	logger.Info("Database connection pool established.")

	if migrate {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			app.Close()
			return nil, err
		}
		logger.Info("Database migrations applied.")
	}

	mapper, err := accountmap.Load(cfg.AccountMappingFile)
	if err != nil {
		app.Close()
		return nil, err
	}

	numbers, err := idgen.NewSnowflake(cfg.SnowflakeWorkerID)
	if err != nil {
		app.Close()
		return nil, err
	}

	infra := services.Infrastructure{
		Mapper:         mapper,
		JournalNumbers: numbers,
		Locker:         newLocker(ctx, cfg, logger, app),
		Publisher:      newPublisher(cfg, logger, app),
	}

	app.Services = services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool), infra)
	return app, nil
}

func newLocker(ctx context.Context, cfg *config.Config, logger *slog.Logger, app *App) ports.IdempotencyLocker {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, recorder locking disabled")
		return lock.NoopLocker{}
	}
	client, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("Redis unavailable, recorder locking disabled", slog.String("error", err.Error()))
		return lock.NoopLocker{}
	}
	app.closers = append(app.closers, func() { _ = client.Close() })
	return lock.NewRedisLocker(client, cfg.IdempotencyLockTTL)
}

func newPublisher(cfg *config.Config, logger *slog.Logger, app *App) ports.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, finance events disabled")
		return events.NoopPublisher{}
	}
	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		logger.Warn("Kafka unavailable, finance events disabled", slog.String("error", err.Error()))
		return events.NoopPublisher{}
	}
	app.closers = append(app.closers, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Error closing Kafka producer", slog.String("error", err.Error()))
		}
	})
	return publisher
}
