//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

import (
	"context"
	"time"

	"shipping/internal/entities"
	"shipping/internal/service/draft"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
}

type Composer interface {
	ComposeOrder(form draft.OrderForm, now time.Time) (entities.OrderDraft, error)
}
