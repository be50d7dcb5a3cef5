package article

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a single article identified by its slug.
// Unpublished articles are served too; direct links act as previews.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	art, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
