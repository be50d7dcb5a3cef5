package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/listquery"
	artUC "newsdesk/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// The slug route serves reads; mutations address articles by numeric ID.
func Register(mux *http.ServeMux, svc *artUC.Service, queryCfg listquery.Config, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{
		Svc:      svc,
		QueryCfg: queryCfg,
		Logger:   logger,
	})
	mux.Handle("GET /api/articles/{slug}", GetHandler{svc})

	mux.Handle("POST /api/articles", CreateHandler{svc})
	mux.Handle("POST /api/articles/{id}/view", ViewHandler{svc})
	mux.Handle("PUT /api/articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /api/articles/{id}", DeleteHandler{svc})
}
