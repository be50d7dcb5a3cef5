// Package breakingnews provides HTTP handlers for the breaking-news banner.
package breakingnews

import (
	"errors"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	bnUC "newsdesk/internal/usecase/breakingnews"
)

// DTO represents the JSON structure for breaking-news data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Severe weather warning issued"`
	URL       string    `json:"url" example:"/live-coverage"`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"createdAt" example:"2025-10-26T10:00:00Z"`
}

func toDTO(n *entity.BreakingNews) DTO {
	return DTO{
		ID:        n.ID,
		Title:     n.Title,
		URL:       n.URL,
		Active:    n.Active,
		CreatedAt: n.CreatedAt,
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
	case errors.Is(err, bnUC.ErrBreakingNewsNotFound):
		respond.Message(w, http.StatusNotFound, "breaking news not found")
	case errors.Is(err, bnUC.ErrInvalidBreakingNewsID), errors.Is(err, pathutil.ErrInvalidID):
		respond.Message(w, http.StatusBadRequest, "invalid breaking news id")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
