package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"shipping/internal/handlers/rest/dto"
)

var shuttingDownBody, _ = json.Marshal(dto.ErrorResponse{
	Error:   http.StatusText(http.StatusServiceUnavailable),
	Message: "service is shutting down",
})

// Middleware отвечает 503 на новые запросы, когда сервер уже останавливается
// и ongoingCtx отменен. До этого in-flight и новые запросы обслуживаются как обычно.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() == nil || !isShuttingDown.Load() {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Connection", "close")
			w.Header().Set("Retry-After", "5")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write(shuttingDownBody)
		})
	}
}
