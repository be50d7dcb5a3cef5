package breakingnews

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	bnUC "newsdesk/internal/usecase/breakingnews"
)

type ActiveHandler struct{ Svc *bnUC.Service }

// ServeHTTP returns the item currently surfaced to readers, or a JSON null
// body when no banner is active. Both cases are 200; an empty banner is not
// an error condition for clients.
func (h ActiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	news, err := h.Svc.Active(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if news == nil {
		// Typed nil so the encoder emits "null" rather than nothing.
		respond.JSON(w, http.StatusOK, (*DTO)(nil))
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(news))
}
