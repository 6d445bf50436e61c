//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transitions_get_test
package order_transitions_get

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
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	ListTransitions(ctx context.Context, orderID string) ([]entities.StatusTransition, error)
}

type Policy interface {
	Mode() string
	Next(from entities.OrderStatusType) []entities.OrderStatusType
}
