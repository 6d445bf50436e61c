package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"shipping/internal/entities"
	orderservice "shipping/internal/service/order"
	"shipping/pkg/logger"
)

// redeliveryDelay - пауза перед повторным чтением сообщения, которое не удалось
// применить из-за недоступности сервера заказов.
const redeliveryDelay = 2 * time.Second

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	redeliveryDelay          time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order.status.changed"),
	)

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		redeliveryDelay:          redeliveryDelay,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing применяет одно событие. Сообщение не коммитится при отмене контекста
// и при недоступности сервера заказов: тогда возвращается true и сообщение будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("bad message payload")
		sess.MarkMessage(message, "")
		return false
	}

	orderID := strings.TrimSpace(event.OrderID)
	status := entities.OrderStatusType(strings.ToUpper(strings.TrimSpace(event.Status)))

	msgLog = msgLog.With(
		logger.NewField("order", orderID),
		logger.NewField("event_status", status.String()),
	)
	msgLog.Info("processing status change")

	order, err := h.orderService.ProcessOrderStatusChange(ctx, entities.OrderModify{
		ID:     &orderID,
		Status: &status,
	})
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrUndefinedStatus),
			errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrValidation):
			errLog.Warn("event rejected")

		case errors.Is(err, orderservice.ErrNotFound):
			errLog.Warn("event for unknown order")

		case errors.Is(err, orderservice.ErrInvalidTransition):
			errLog.Warn("event transition not allowed")

		case unavailable(err):
			errLog.Warn("order service unavailable, message will be reprocessed")
			h.waitRedelivery(sess.Context())
			return true

		default:
			errLog.Error("failed to apply status change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", order.Status.String()),
	).Info("status change processed")

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) waitRedelivery(ctx context.Context) {
	timer := time.NewTimer(h.redeliveryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// unavailable сообщает о сетевом сбое или 5xx сервера заказов. Прочие неожиданные ответы
// повторное чтение не исправит.
func unavailable(err error) bool {
	var transportErr *orderservice.TransportError
	if !errors.As(err, &transportErr) {
		return false
	}
	return transportErr.StatusCode == 0 || transportErr.StatusCode >= http.StatusInternalServerError
}
