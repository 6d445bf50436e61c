package auth_register_post

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
	var body dto.Register
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	registration := entities.Registration{
		FirstName: strings.TrimSpace(body.FirstName),
		LastName:  strings.TrimSpace(body.LastName),
		Email:     strings.TrimSpace(body.Email),
		Password:  body.Password,
	}

	var details []order.ValidationDetail
	for _, f := range []struct{ name, value string }{
		{"firstName", registration.FirstName},
		{"lastName", registration.LastName},
		{"email", registration.Email},
		{"password", registration.Password},
	} {
		if f.value == "" {
			details = append(details, order.ValidationDetail{Field: f.name, Message: "is required"})
		}
	}
	if len(details) > 0 {
		respond.Error(w, h.log, order.NewValidationError("invalid registration", details...))
		return
	}

	res, err := h.service.Register(r.Context(), registration)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromAuthResult(res))
}
