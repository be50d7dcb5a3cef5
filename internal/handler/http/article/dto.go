// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, searching, fetching, creating, updating
// and deleting articles, plus public view tracking.
package article

import (
	"errors"
	"net/http"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID              int64     `json:"id" example:"1"`
	Title           string    `json:"title" example:"Election results are in"`
	Slug            string    `json:"slug" example:"election-results-are-in"`
	Excerpt         string    `json:"excerpt" example:"A short teaser shown in listings."`
	Content         string    `json:"content" example:"<p>Full story body.</p>"`
	FeaturedImage   *string   `json:"featuredImage" example:"https://cdn.example.com/img/1.jpg"`
	CategoryID      *int64    `json:"categoryId" example:"2"`
	Author          string    `json:"author" example:"Jane Smith"`
	PublishedAt     time.Time `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	Views           int64     `json:"views" example:"42"`
	Featured        bool      `json:"featured" example:"false"`
	Published       bool      `json:"published" example:"true"`
	SeoTitle        *string   `json:"seoTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Tags            []string  `json:"tags" example:"election,politics"`
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		// Clients iterate tags unconditionally, so never emit JSON null.
		tags = []string{}
	}
	return DTO{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		Excerpt:         a.Excerpt,
		Content:         a.Content,
		FeaturedImage:   a.FeaturedImage,
		CategoryID:      a.CategoryID,
		Author:          a.Author,
		PublishedAt:     a.PublishedAt,
		Views:           a.Views,
		Featured:        a.Featured,
		Published:       a.Published,
		SeoTitle:        a.SeoTitle,
		MetaDescription: a.MetaDescription,
		Tags:            tags,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}

// writeServiceError maps use case errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var verrs entity.ValidationErrors
	if errors.As(err, &verrs) {
		respond.Invalid(w, verrs.Error(), verrs.Fields())
		return
	}
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.Message(w, http.StatusNotFound, "article not found")
	case errors.Is(err, artUC.ErrInvalidArticleID), errors.Is(err, pathutil.ErrInvalidID):
		respond.Message(w, http.StatusBadRequest, "invalid article id")
	case errors.Is(err, entity.ErrConflict):
		respond.Message(w, http.StatusConflict, "article with the same slug already exists")
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
