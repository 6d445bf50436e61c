package transition

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"shipping/internal/entities"
)

const table = "order_status_transitions"

var (
	qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns = []string{"id", "order_id", "from_status", "to_status", "source", "changed_at"}
)

// Repository - журнал переходов статусов заказов.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, transition entities.StatusTransition) (*entities.StatusTransition, error) {
	model := FromDomain(&transition)

	query, args, err := qb.
		Insert(table).
		Columns("order_id", "from_status", "to_status", "source", "changed_at").
		Values(model.OrderID, model.FromStatus, model.ToStatus, model.Source, model.ChangedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transition repository append error: %w", err)
	}

	if err := r.querier.QueryRow(ctx, query, args...).Scan(&model.ID); err != nil {
		return nil, fmt.Errorf("unexpected transition repository append error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusTransition, error) {
	query, args, err := qb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("changed_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transition repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transition repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]TransitionDB, 0, 8)
	for rows.Next() {
		var model TransitionDB
		err := rows.Scan(
			&model.ID,
			&model.OrderID,
			&model.FromStatus,
			&model.ToStatus,
			&model.Source,
			&model.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected transition repository list error: %w", err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transition repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := qb.
		Delete(table).
		Where(sq.Lt{"changed_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected transition repository delete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected transition repository delete error: %w", err)
	}

	return tag.RowsAffected(), nil
}
