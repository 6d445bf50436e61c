package order_post

import (
	"encoding/json"
	"net/http"
	"time"

	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
	"shipping/internal/service/draft"
)

type Handler struct {
	log      handlerLogger
	service  Service
	composer Composer
	now      func() time.Time
}

func New(log handlerLogger, service Service, composer Composer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		composer: composer,
		now:      time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var form draft.OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	orderDraft, err := h.composer.ComposeOrder(form.WithDefaults(), h.now())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderDraft)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromOrder(orderEntity))
}
