package category

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type GetHandler struct{ Svc *catUC.Service }

// ServeHTTP returns a single category identified by its slug.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	category, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(category))
}
