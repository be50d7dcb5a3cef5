// Package category provides HTTP handlers for category-related endpoints.
// It includes handlers for listing categories, fetching one by slug, and
// creating new ones.
package category

import (
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Politics"`
	Slug  string `json:"slug" example:"politics"`
	Color string `json:"color" example:"#EF4444"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Color: c.Color,
	}
}

// writeServiceError maps use case errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		respond.Invalid(w, verrs.Error(), verrs.Fields())
		return
	}
	switch {
	case errors.Is(err, catUC.ErrCategoryNotFound):
		respond.Message(w, http.StatusNotFound, "category not found")
	case errors.Is(err, entity.ErrConflict):
		respond.Message(w, http.StatusConflict, "category with the same name or slug already exists")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
