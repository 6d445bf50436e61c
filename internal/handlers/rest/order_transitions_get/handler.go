package order_transitions_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
)

type response struct {
	OrderID string           `json:"orderId"`
	Status  string           `json:"status"`
	Policy  string           `json:"policy"`
	Next    []string         `json:"next"`
	History []dto.Transition `json:"history"`
}

// Handler отдает журнал переходов заказа и статусы, доступные по текущей политике.
type Handler struct {
	log     handlerLogger
	service Service
	policy  Policy
}

func New(log handlerLogger, service Service, policy Policy) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		policy:  policy,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	history, err := h.service.ListTransitions(r.Context(), orderID)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	next := h.policy.Next(orderEntity.Status)
	res := response{
		OrderID: orderEntity.ID,
		Status:  orderEntity.Status.String(),
		Policy:  h.policy.Mode(),
		Next:    make([]string, 0, len(next)),
		History: dto.FromTransitions(history),
	}
	for _, s := range next {
		res.Next = append(res.Next, s.String())
	}

	respond.JSON(w, h.log, http.StatusOK, res)
}
