package order_submit_post

import (
	"net/http"

	"github.com/gorilla/mux"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
)

// Handler завершает добавление посылок: заказ уходит в PROCESSING.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderEntity, err := h.service.SubmitOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(orderEntity))
}
