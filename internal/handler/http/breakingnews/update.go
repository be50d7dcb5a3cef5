package breakingnews

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	bnUC "newsdesk/internal/usecase/breakingnews"
)

type UpdateHandler struct{ Svc *bnUC.Service }

// ServeHTTP applies a partial update to a banner item and returns the
// updated row. Deactivating the only active banner clears the public feed.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req struct {
		Title  *string `json:"title"`
		URL    *string `json:"url"`
		Active *bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	news, err := h.Svc.Update(r.Context(), bnUC.UpdateInput{
		ID:     id,
		Title:  req.Title,
		URL:    req.URL,
		Active: req.Active,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(news))
}
