package article

import (
	"encoding/json"
	"net/http"

	httpmetrics "newsdesk/internal/handler/http"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article and returns the stored row.
// Omitted flags default to featured=false, published=true, so a bare
// create goes live immediately.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string   `json:"title"`
		Slug            string   `json:"slug"`
		Excerpt         string   `json:"excerpt"`
		Content         string   `json:"content"`
		FeaturedImage   *string  `json:"featuredImage"`
		CategoryID      *int64   `json:"categoryId"`
		Author          string   `json:"author"`
		Featured        *bool    `json:"featured"`
		Published       *bool    `json:"published"`
		SeoTitle        *string  `json:"seoTitle"`
		MetaDescription *string  `json:"metaDescription"`
		Tags            []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		CategoryID:      req.CategoryID,
		Author:          req.Author,
		Featured:        featured,
		Published:       published,
		SeoTitle:        req.SeoTitle,
		MetaDescription: req.MetaDescription,
		Tags:            req.Tags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpmetrics.RecordArticleCreated()
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
