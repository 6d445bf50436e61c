package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrTransport            = errors.New("order service unavailable")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUndefinedStatus      = errors.New("undefined order status")
	ErrPackageOrderMismatch = errors.New("package belongs to another order")
)

// TransportError - сетевой сбой или неожиданный ответ сервера заказов.
// StatusCode равен 0, если ответа не было.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Method, e.Path)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": %s", e.Body)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError - отказ в принятии черновика или статуса с перечнем полей.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, d.Field+": "+d.Message)
	}
	return e.Message + " (" + strings.Join(fields, "; ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationError достает ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func invalidStatusError(status string) error {
	return fmt.Errorf("%w: %w", ErrInvalidStatus, NewValidationError(
		"invalid order status",
		ValidationDetail{Field: "status", Message: fmt.Sprintf("unknown status %q", status)},
	))
}
