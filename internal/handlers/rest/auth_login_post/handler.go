package auth_login_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"shipping/internal/entities"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
	"shipping/internal/service/order"
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
	var body dto.Login
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	credentials := entities.Credentials{
		Email:    strings.TrimSpace(body.Email),
		Password: body.Password,
	}
	if credentials.Email == "" || credentials.Password == "" {
		respond.Error(w, h.log, order.NewValidationError("email and password are required"))
		return
	}

	res, err := h.service.Login(r.Context(), credentials)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromAuthResult(res))
}
