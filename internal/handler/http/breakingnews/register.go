package breakingnews

import (
	"net/http"

	bnUC "newsdesk/internal/usecase/breakingnews"
)

// Register registers all breaking-news HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *bnUC.Service) {
	mux.Handle("GET /api/breaking-news", ActiveHandler{svc})
	mux.Handle("POST /api/breaking-news", CreateHandler{svc})
	mux.Handle("PUT /api/breaking-news/{id}", UpdateHandler{svc})
}
