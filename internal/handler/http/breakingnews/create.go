package breakingnews

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	bnUC "newsdesk/internal/usecase/breakingnews"
)

type CreateHandler struct{ Svc *bnUC.Service }

// ServeHTTP creates a new banner item and returns the stored row.
// Omitting active defaults to true: a freshly posted banner goes live at once.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string `json:"title"`
		URL    string `json:"url"`
		Active *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	news, err := h.Svc.Create(r.Context(), bnUC.CreateInput{
		Title:  req.Title,
		URL:    req.URL,
		Active: active,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(news))
}
