package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a partial update to an existing article and returns the
// updated row. Fields absent from the body are left untouched; the view
// counter cannot be set through this endpoint.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req struct {
		Title           *string   `json:"title"`
		Slug            *string   `json:"slug"`
		Excerpt         *string   `json:"excerpt"`
		Content         *string   `json:"content"`
		FeaturedImage   *string   `json:"featuredImage"`
		CategoryID      *int64    `json:"categoryId"`
		Author          *string   `json:"author"`
		PublishedAt     *string   `json:"publishedAt"`
		Featured        *bool     `json:"featured"`
		Published       *bool     `json:"published"`
		SeoTitle        *string   `json:"seoTitle"`
		MetaDescription *string   `json:"metaDescription"`
		Tags            *[]string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var pAtPtr *time.Time
	if req.PublishedAt != nil {
		t, perr := time.Parse(time.RFC3339, *req.PublishedAt)
		if perr != nil {
			respond.Error(w, http.StatusBadRequest,
				errors.New("publishedAt must be in RFC3339 format"))
			return
		}
		pAtPtr = &t
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:              id,
		Title:           req.Title,
		Slug:            req.Slug,
		Excerpt:         req.Excerpt,
		Content:         req.Content,
		FeaturedImage:   req.FeaturedImage,
		CategoryID:      req.CategoryID,
		Author:          req.Author,
		PublishedAt:     pAtPtr,
		Featured:        req.Featured,
		Published:       req.Published,
		SeoTitle:        req.SeoTitle,
		MetaDescription: req.MetaDescription,
		Tags:            req.Tags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
