package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shipping/internal/handlers/rest/dto"
	"shipping/internal/pkg/location"
	"shipping/internal/pkg/phone"
	"shipping/internal/service/order"
	"shipping/internal/session"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log handlerLogger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error переводит ошибку сервиса заказов в HTTP статус.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	code := StatusCode(err)

	body := dto.ErrorResponse{
		Error:   http.StatusText(code),
		Message: err.Error(),
	}
	if ve, ok := order.AsValidationError(err); ok {
		body.Details = ve.Details
	}
	if code >= http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		body.Message = http.StatusText(code)
	}

	JSON(w, log, code, body)
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, location.ErrUnknownDepartment),
		errors.Is(err, phone.ErrUnknownCountry):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, order.ErrUnauthorized),
		errors.Is(err, session.ErrNoCredential),
		errors.Is(err, session.ErrExpired):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, order.ErrTransport),
		errors.Is(err, order.ErrPackageOrderMismatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest - ответ на тело запроса, которое не удалось разобрать.
func BadRequest(w http.ResponseWriter, log handlerLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: message,
	})
}
