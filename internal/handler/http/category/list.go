package category

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type ListHandler struct{ Svc *catUC.Service }

// ServeHTTP returns every category, ordered by name.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]DTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, dtos)
}
