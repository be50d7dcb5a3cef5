package article

import (
	"log/slog"
	"net/http"
	"strconv"

	"newsdesk/internal/common/listquery"
	httpmetrics "newsdesk/internal/handler/http"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

type ListHandler struct {
	Svc      *artUC.Service
	QueryCfg listquery.Config
	Logger   *slog.Logger
}

// ServeHTTP returns published articles, most recently published first.
//
// Query parameters:
//   - search: non-empty value switches to full substring search and the
//     remaining filters are ignored
//   - featured: the literal "true" restricts results to featured articles;
//     any other value leaves the filter off
//   - categoryId: restricts results to one category; unparseable values are
//     ignored rather than rejected so stale client links keep working
//   - limit, offset: result windowing
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)
	q := r.URL.Query()

	if search := q.Get("search"); search != "" {
		httpmetrics.RecordArticleSearch()
		articles, err := h.Svc.Search(ctx, search)
		if err != nil {
			logger.Error("article search failed", "error", err.Error())
			writeServiceError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, toDTOs(articles))
		return
	}

	params, err := listquery.ParseQueryParams(r, h.QueryCfg)
	if err != nil {
		logger.Warn("invalid list parameters", "error", err.Error())
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	// The public listing only ever serves published articles.
	published := true
	filter := repository.ArticleFilter{
		Published: &published,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
	if q.Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}
	if cidStr := q.Get("categoryId"); cidStr != "" {
		if cid, perr := strconv.ParseInt(cidStr, 10, 64); perr == nil && cid > 0 {
			filter.CategoryID = &cid
		}
	}

	articles, err := h.Svc.List(ctx, filter)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"limit", params.Limit,
			"offset", params.Offset)
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
