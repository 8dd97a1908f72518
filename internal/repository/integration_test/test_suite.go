package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/postgres"
	"fastfeet/pkg/logger/zap_adapter"
	"fastfeet/pkg/querier"
	"fastfeet/pkg/tx"
)

const (
	postgresImage = "postgres:16-alpine"
	dbName        = "fastfeet"
	dbUser        = "fastfeet"
	dbPassword    = "fastfeet"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

// GetPool поднимает БД один раз на пакет. Если POSTGRES_HOST задан (Makefile,
// CI с сервисным контейнером) - используем его, иначе testcontainers
func GetPool() *pgxpool.Pool {
	suiteOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		cfg := envDatabase()
		if cfg == nil {
			cfg = startContainer(ctx)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, pool); err != nil {
			log.Fatalf("failed to migrate test database: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return poolInstance
}

func GetQuerier() *querier.Querier {
	GetPool()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	return tx.New(GetPool())
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery_problems, packages, deliverymen, recipients, files, sessions, users
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

func envDatabase() *config.Database {
	if os.Getenv("POSTGRES_HOST") == "" {
		return nil
	}
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// контейнер не терминируем: его уберет ryuk после завершения процесса тестов
func startContainer(ctx context.Context) *config.Database {
	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(dbUser),
		tcpostgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to get postgres container port: %v", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}
}
