package querier

import (
	"context"
	"strconv"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database statements",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"op", "in_tx"},
)

// Querier выполняет запросы в транзакции из контекста, а без нее на пуле.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	executor, inTx := q.get(ctx)
	defer observe("exec", inTx, time.Now())

	return executor.Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	executor, inTx := q.get(ctx)
	defer observe("query", inTx, time.Now())

	return executor.Query(ctx, sql, args...)
}

// QueryRow замеряет только отправку запроса, чтение строки происходит в Scan.
func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	executor, inTx := q.get(ctx)
	defer observe("query_row", inTx, time.Now())

	return executor.QueryRow(ctx, sql, args...)
}

func (q *Querier) get(ctx context.Context) (pgxv5.Tr, bool) {
	tr := q.getter.DefaultTrOrDB(ctx, q.pool)
	_, onPool := tr.(*pgxpool.Pool)
	return tr, !onPool
}

func observe(op string, inTx bool, start time.Time) {
	QueryDuration.WithLabelValues(op, strconv.FormatBool(inTx)).Observe(time.Since(start).Seconds())
}
