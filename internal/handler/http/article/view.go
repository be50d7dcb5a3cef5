package article

import (
	"net/http"

	httpmetrics "newsdesk/internal/handler/http"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type ViewHandler struct{ Svc *artUC.Service }

// ServeHTTP records one view for an article. The endpoint is public and
// deliberately reveals nothing about whether the article exists: unknown IDs
// still get a success response so reader pages cannot probe the catalogue.
func (h ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	found, err := h.Svc.IncrementViews(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpmetrics.RecordArticleView(found)
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
