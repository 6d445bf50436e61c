package ping_get

import (
	"net/http"

	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
	"shipping/internal/pkg/requestid"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

// ServeHTTP отвечает pong с X-Request-ID запроса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := dto.PingResponse{Message: "pong"}
	if id, ok := requestid.FromContext(r.Context()); ok {
		resp.RequestID = id
	}

	respond.JSON(w, h.log, http.StatusOK, resp)
}
