package package_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
	"shipping/internal/service/draft"
)

type Handler struct {
	log      handlerLogger
	service  Service
	composer Composer
}

func New(log handlerLogger, service Service, composer Composer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		composer: composer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var form draft.PackageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	packageDraft, err := h.composer.ComposePackage(form)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	pkg, err := h.service.AddPackage(r.Context(), mux.Vars(r)["id"], packageDraft)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromPackage(pkg))
}
