//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/pharma_inventory/internal/repo/postgres"
)

const (
	defaultPostgresImage = "postgres:16-alpine"
	defaultRedpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

// Логи жизненного цикла контейнеров (создание, старт, остановка).
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// imageFromEnv позволяет подменить образ на зеркало в CI: TC_POSTGRES_IMAGE, TC_REDPANDA_IMAGE.
func imageFromEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// PGContainer - Postgres в контейнере и пул сервиса, подключённый к нему.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC поднимает пустую базу inventory; миграции применяет вызывающий (ApplyMigrationsGoose).
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		imageFromEnv("TC_POSTGRES_IMAGE", defaultPostgresImage),
		tc.WithLifecycleHooks(tc.DefaultLoggingHook(tcLogger)),
		postgres.WithDatabase("inventory"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		// Postgres в образе перезапускается после initdb, поэтому ждём второе сообщение о готовности.
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// KafkaEnv - Kafka-совместимый брокер (Redpanda) для тестов консьюмера приёмок.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

// StartKafkaTC поднимает Redpanda с автосозданием топиков; baseTopic - префикс тем тестов.
func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		imageFromEnv("TC_REDPANDA_IMAGE", defaultRedpandaImage),
		tc.WithLifecycleHooks(tc.DefaultLoggingHook(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}
