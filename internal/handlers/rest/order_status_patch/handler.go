package order_status_patch

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"shipping/internal/entities"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
)

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
	var body dto.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	status := entities.OrderStatusType(strings.ToUpper(strings.TrimSpace(body.Status)))

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), mux.Vars(r)["id"], status, entities.TransitionByOperator)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(orderEntity))
}
