package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/entities"
	"shipping/pkg/logger"
)

// Service - жизненный цикл заказа поверх удаленного сервера заказов.
// Состояние заказов не кэшируется: после любой мутации вызывающий
// перечитывает список через ListOrders.
type Service struct {
	gateway   OrderGateway
	journal   TransitionJournal
	txManager TxManager
	policy    TransitionPolicy
	retention time.Duration
	log       serviceLogger
	now       func() time.Time
}

func New(
	gateway OrderGateway,
	journal TransitionJournal,
	txManager TxManager,
	policy TransitionPolicy,
	retention time.Duration,
	log serviceLogger,
) *Service {
	return &Service{
		gateway:   gateway,
		journal:   journal,
		txManager: txManager,
		policy:    policy,
		retention: retention,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	order, err := s.gateway.CreateOrder(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if order.Status != entities.DefaultOrderStatus {
		s.log.Warn("order created with unexpected status",
			logger.NewField("order_id", order.ID),
			logger.NewField("status", order.Status.String()),
		)
	}
	return order, nil
}

// UpdateOrderStatus переводит заказ в status. Неизвестный статус отклоняется всегда,
// граф переходов проверяет политика. Успешный переход пишется в журнал.
func (s *Service) UpdateOrderStatus(
	ctx context.Context,
	orderID string,
	status entities.OrderStatusType,
	source entities.TransitionSource,
) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	current, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if err := s.policy.Check(current.Status, status); err != nil {
		return nil, fmt.Errorf("order %s: %w", orderID, err)
	}

	updated, err := s.gateway.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", orderID, err)
	}

	s.recordTransition(ctx, entities.StatusTransition{
		OrderID:   orderID,
		From:      current.Status,
		To:        updated.Status,
		Source:    source,
		ChangedAt: s.now(),
	})

	return updated, nil
}

// SubmitOrder завершает добавление посылок и передает заказ в обработку.
func (s *Service) SubmitOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.UpdateOrderStatus(ctx, orderID, entities.OrderProcessing, entities.TransitionByOperator)
}

// ProcessOrderStatusChange применяет событие смены статуса из другой системы.
// Повторно доставленное событие для заказа, уже стоящего в этом статусе, ничего не меняет.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	status := *orderModify.Status
	if err := validateStatus(status); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndefinedStatus, err)
	}

	current, err := s.GetOrder(ctx, *orderModify.ID)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}

	return s.UpdateOrderStatus(ctx, current.ID, status, entities.TransitionByEvent)
}

func (s *Service) AddPackage(ctx context.Context, orderID string, draft entities.PackageDraft) (*entities.Package, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if err := validatePackageDraft(draft); err != nil {
		return nil, err
	}

	pkg, err := s.gateway.AddPackage(ctx, orderID, draft)
	if err != nil {
		return nil, fmt.Errorf("add package to order %s: %w", orderID, err)
	}
	return pkg, nil
}

func (s *Service) DeletePackage(ctx context.Context, orderID, packageID string) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(packageID) {
		return fmt.Errorf("%w: empty package id", ErrNotFound)
	}

	if err := s.gateway.DeletePackage(ctx, orderID, packageID); err != nil {
		return fmt.Errorf("delete package %s of order %s: %w", packageID, orderID, err)
	}
	return nil
}

func (s *Service) ListTransitions(ctx context.Context, orderID string) ([]entities.StatusTransition, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	transitions, err := s.journal.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list transitions of order %s: %w", orderID, err)
	}
	return transitions, nil
}

// CleanupTransitions удаляет записи журнала старше срока хранения.
func (s *Service) CleanupTransitions(ctx context.Context) (int64, error) {
	deleted, err := s.journal.DeleteBefore(ctx, s.now().Add(-s.retention))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}
	return deleted, nil
}

// recordTransition пишет переход в журнал. Удаленный заказ к этому моменту уже изменен,
// поэтому сбой журнала только логируется. Повтор того же перехода пишется отдельной записью.
func (s *Service) recordTransition(ctx context.Context, transition entities.StatusTransition) {
	StatusTransitionsTotal.WithLabelValues(
		transition.From.String(),
		transition.To.String(),
		transition.Source.String(),
	).Inc()

	err := s.txManager.Do(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if _, err := s.journal.Append(ctx, transition); err != nil {
			return fmt.Errorf("append transition: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to record status transition",
			logger.NewField("order_id", transition.OrderID),
			logger.NewField("from", transition.From.String()),
			logger.NewField("to", transition.To.String()),
			logger.NewField("error", err),
		)
	}
}
