package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

const (
	conflictRetries         = 3
	conflictInitialInterval = 10 * time.Millisecond
	conflictMaxInterval     = 100 * time.Millisecond
)

// Manager запускает функции в serializable транзакции.
// Конфликт сериализации откатывает транзакцию и повторяет ее целиком.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: conflictInitialInterval,
			MaxInterval:     conflictMaxInterval,
			MaxElapsedTime:  time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			MaxRetries:      conflictRetries,
			ShouldRetry:     IsConflict,
		}),
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
	)

	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	})
}

// IsConflict - ошибка, после которой транзакцию можно безопасно повторить.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
}
