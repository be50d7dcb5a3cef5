package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// The identifier, publication timestamp and view counter are server-assigned.
type CreateInput struct {
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	FeaturedImage   *string
	CategoryID      *int64
	Author          string
	Featured        bool
	Published       bool
	SeoTitle        *string
	MetaDescription *string
	Tags            []string
}

// UpdateInput represents a partial update of an existing article.
// Fields with nil values are left untouched. The view counter is
// deliberately absent: the increment operation is its only mutation path.
type UpdateInput struct {
	ID              int64
	Title           *string
	Slug            *string
	Excerpt         *string
	Content         *string
	FeaturedImage   *string
	CategoryID      *int64
	Author          *string
	PublishedAt     *time.Time
	Featured        *bool
	Published       *bool
	SeoTitle        *string
	MetaDescription *string
	Tags            *[]string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves articles matching the filter, most recent first.
func (s *Service) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetBySlug retrieves a single article by its slug.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	art, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Search finds published articles whose title, excerpt or content contains
// the query as a case-insensitive substring. Empty queries are not
// special-cased here; the handler decides when to search at all.
func (s *Service) Search(ctx context.Context, query string) ([]*entity.Article, error) {
	articles, err := s.Repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Create validates the input and creates a new article with
// publish-immediately defaults. The returned row carries the assigned
// identifier, publication timestamp and a zero view counter.
// Returns entity.ValidationErrors enumerating every invalid field.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	var errs entity.ValidationErrors
	if ve := entity.ValidateTitle("title", in.Title); ve != nil {
		errs = append(errs, ve)
	}
	if ve := entity.ValidateSlug("slug", in.Slug); ve != nil {
		errs = append(errs, ve)
	}
	if in.Excerpt == "" {
		errs = append(errs, &entity.ValidationError{Field: "excerpt", Message: "is required"})
	}
	if in.Content == "" {
		errs = append(errs, &entity.ValidationError{Field: "content", Message: "is required"})
	}
	if in.Author == "" {
		errs = append(errs, &entity.ValidationError{Field: "author", Message: "is required"})
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		errs = append(errs, &entity.ValidationError{Field: "categoryId", Message: "must be positive"})
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	art := &entity.Article{
		Title:           in.Title,
		Slug:            in.Slug,
		Excerpt:         in.Excerpt,
		Content:         in.Content,
		FeaturedImage:   in.FeaturedImage,
		CategoryID:      in.CategoryID,
		Author:          in.Author,
		Featured:        in.Featured,
		Published:       in.Published,
		SeoTitle:        in.SeoTitle,
		MetaDescription: in.MetaDescription,
		Tags:            in.Tags,
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update merges the provided fields into the existing article and writes the
// result back. Concurrent updates to the same row are last-write-wins.
// Returns ErrInvalidArticleID, ErrArticleNotFound, or
// entity.ValidationErrors when an updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	var errs entity.ValidationErrors
	if in.Title != nil {
		if ve := entity.ValidateTitle("title", *in.Title); ve != nil {
			errs = append(errs, ve)
		}
		art.Title = *in.Title
	}
	if in.Slug != nil {
		if ve := entity.ValidateSlug("slug", *in.Slug); ve != nil {
			errs = append(errs, ve)
		}
		art.Slug = *in.Slug
	}
	if in.Excerpt != nil {
		if *in.Excerpt == "" {
			errs = append(errs, &entity.ValidationError{Field: "excerpt", Message: "cannot be empty"})
		}
		art.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		if *in.Content == "" {
			errs = append(errs, &entity.ValidationError{Field: "content", Message: "cannot be empty"})
		}
		art.Content = *in.Content
	}
	if in.Author != nil {
		if *in.Author == "" {
			errs = append(errs, &entity.ValidationError{Field: "author", Message: "cannot be empty"})
		}
		art.Author = *in.Author
	}
	if in.CategoryID != nil {
		if *in.CategoryID <= 0 {
			errs = append(errs, &entity.ValidationError{Field: "categoryId", Message: "must be positive"})
		}
		art.CategoryID = in.CategoryID
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if in.FeaturedImage != nil {
		art.FeaturedImage = in.FeaturedImage
	}
	if in.PublishedAt != nil {
		art.PublishedAt = *in.PublishedAt
	}
	if in.Featured != nil {
		art.Featured = *in.Featured
	}
	if in.Published != nil {
		art.Published = *in.Published
	}
	if in.SeoTitle != nil {
		art.SeoTitle = in.SeoTitle
	}
	if in.MetaDescription != nil {
		art.MetaDescription = in.MetaDescription
	}
	if in.Tags != nil {
		art.Tags = *in.Tags
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive and
// ErrArticleNotFound if no row was removed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !removed {
		return ErrArticleNotFound
	}
	return nil
}

// IncrementViews durably increases the article's view counter by one.
// The bool reports whether the article exists; an unknown ID is a no-op,
// not an error, matching the public view-tracking contract.
func (s *Service) IncrementViews(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArticleID
	}

	found, err := s.Repo.IncrementViews(ctx, id)
	if err != nil {
		return false, fmt.Errorf("increment views: %w", err)
	}
	return found, nil
}
