//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderGateway interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
	AddPackage(ctx context.Context, orderID string, draft entities.PackageDraft) (*entities.Package, error)
	DeletePackage(ctx context.Context, orderID, packageID string) error
}

type TransitionJournal interface {
	Append(ctx context.Context, transition entities.StatusTransition) (*entities.StatusTransition, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusTransition, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

type TransitionPolicy interface {
	Check(from, to entities.OrderStatusType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
