package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/postgres"
	"shipping/pkg/logger/zap_adapter"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	suiteOnce       sync.Once
)

func setup() {
	suiteOnce.Do(func() {
		ctx := context.Background()

		cfg, err := databaseConfig(ctx)
		if err != nil {
			log.Fatalf("failed to prepare test database: %v", err)
		}

		zapLogger, err := zap_adapter.NewZapAdapter("error")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})
}

// databaseConfig берет POSTGRES_* из окружения, а без POSTGRES_HOST поднимает контейнер.
// Контейнер удаляет reaper testcontainers после завершения процесса.
func databaseConfig(ctx context.Context) (*config.Database, error) {
	if os.Getenv("POSTGRES_HOST") != "" {
		return &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}, nil
	}

	const (
		dbName   = "shipping"
		user     = "shipping"
		password = "shipping"
	)

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(user),
		tcpostgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, err
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     user,
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}, nil
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_transitions RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
