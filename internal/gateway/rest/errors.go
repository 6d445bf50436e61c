package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	orderservice "shipping/internal/service/order"
)

// errorBody покрывает встречающиеся форматы ошибок сервера заказов:
// {"message": "...", "details": [...]}, {"message": ["...", "..."]} и {"error": "..."}.
type errorBody struct {
	Message json.RawMessage                 `json:"message"`
	Error   string                          `json:"error"`
	Details []orderservice.ValidationDetail `json:"details"`
	Errors  []orderservice.ValidationDetail `json:"errors"`
}

func statusError(method, path string, code int, raw []byte) error {
	body := strings.TrimSpace(string(raw))

	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", orderservice.ErrNotFound, method, path)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s %s: status %d", orderservice.ErrUnauthorized, method, path, code)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", orderservice.ErrInvalidTransition, messageOrBody(raw, body))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return validationError(raw, body)
	default:
		return &orderservice.TransportError{
			Method:     method,
			Path:       path,
			StatusCode: code,
			Body:       body,
		}
	}
}

func validationError(raw []byte, body string) *orderservice.ValidationError {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		if body == "" {
			body = "request rejected by order service"
		}
		return orderservice.NewValidationError(body)
	}

	details := append(eb.Details, eb.Errors...)

	var message string
	var list []string
	switch {
	case json.Unmarshal(eb.Message, &message) == nil && message != "":
	case json.Unmarshal(eb.Message, &list) == nil && len(list) > 0:
		message = "request rejected by order service"
		for _, m := range list {
			details = append(details, orderservice.ValidationDetail{Field: fieldOf(m), Message: m})
		}
	case eb.Error != "":
		message = eb.Error
	default:
		message = "request rejected by order service"
	}

	return orderservice.NewValidationError(message, details...)
}

func messageOrBody(raw []byte, body string) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		var message string
		if json.Unmarshal(eb.Message, &message) == nil && message != "" {
			return message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if body == "" {
		return "conflict"
	}
	return body
}

// fieldOf берет первое слово сообщения вида "email must be an email".
func fieldOf(message string) string {
	field, _, _ := strings.Cut(strings.TrimSpace(message), " ")
	return field
}
