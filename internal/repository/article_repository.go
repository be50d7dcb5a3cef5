package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleFilter contains optional constraints for listing articles.
// All provided options are AND-combined; absent options impose no constraint.
type ArticleFilter struct {
	CategoryID *int64 // Optional: exact category match
	Featured   *bool  // Optional: exact featured-flag match
	Published  *bool  // Optional: exact published-flag match
	Limit      int    // Cap on result count; 0 means no cap
	Offset     int    // Rows to skip; 0 means none
}

type ArticleRepository interface {
	// List retrieves articles matching the filter, ordered by
	// publication timestamp descending (most recent first).
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)
	// Get retrieves an article by ID. Returns (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetBySlug retrieves an article by slug. Returns (nil, nil) when absent.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// Create inserts the article and fills in the server-assigned fields:
	// ID, PublishedAt (now) and Views (0). A slug collision surfaces as
	// entity.ErrConflict.
	Create(ctx context.Context, article *entity.Article) error
	// Update writes the full row for the article's ID.
	// Returns entity.ErrNotFound if no such row exists.
	// Last write wins; there is no optimistic-concurrency check.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article. The bool reports whether a row was
	// actually removed (false for an unknown ID).
	Delete(ctx context.Context, id int64) (bool, error)
	// IncrementViews durably increases the article's view counter by one
	// in a single atomic statement. The bool reports whether the article
	// exists; an unknown ID is not an error.
	IncrementViews(ctx context.Context, id int64) (bool, error)
	// Search retrieves published articles whose title, excerpt or content
	// contains the query as a case-insensitive substring, ordered by
	// publication timestamp descending.
	Search(ctx context.Context, query string) ([]*entity.Article, error)
}
