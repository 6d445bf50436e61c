//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_submit_post_test
package order_submit_post

import (
	"context"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitOrder(ctx context.Context, orderID string) (*entities.Order, error)
}
