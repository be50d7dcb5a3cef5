package category

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP creates a new category and returns the stored row with its
// assigned identifier.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Slug  string `json:"slug"`
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	category, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Color: req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(category))
}
