package request_id

import (
	"net/http"
	"strings"

	"shipping/internal/pkg/requestid"
)

const maxLength = 128

// Middleware берет X-Request-ID клиента или выдает новый, возвращает его в ответе
// и кладет в контекст, откуда его забирает клиент сервера заказов.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestid.Header))
			if id == "" || len(id) > maxLength {
				id = requestid.New()
			}

			w.Header().Set(requestid.Header, id)
			next.ServeHTTP(w, r.WithContext(requestid.WithContext(r.Context(), id)))
		})
	}
}
