package catalog_get

import (
	"net/http"

	"shipping/internal/entities"
	"shipping/internal/handlers/rest/dto"
	"shipping/internal/handlers/rest/respond"
	"shipping/internal/pkg/location"
	"shipping/internal/pkg/phone"
)

// Handler отдает справочники формы заказа. Ответ не зависит от запроса и собирается один раз.
type Handler struct {
	log     handlerLogger
	catalog dto.Catalog
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		catalog: buildCatalog(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, h.catalog)
}

func buildCatalog() dto.Catalog {
	catalog := dto.Catalog{
		DefaultCountry:    phone.DefaultCountryCode,
		DefaultDepartment: location.DefaultDepartment,
	}

	for _, c := range phone.Countries() {
		catalog.Countries = append(catalog.Countries, dto.Country{
			Name:   c.Name,
			Code:   c.Code,
			Prefix: c.Prefix,
			Flag:   c.Flag,
		})
	}

	for _, d := range location.Departments() {
		catalog.Departments = append(catalog.Departments, dto.Department{
			Name:           d.Name,
			Municipalities: d.Municipalities,
		})
	}

	for _, s := range entities.OrderStatuses() {
		catalog.OrderStatuses = append(catalog.OrderStatuses, s.String())
	}

	return catalog
}
