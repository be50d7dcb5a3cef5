// Package repository declares the persistence gateway interfaces the use case
// layer depends on. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CategoryRepository interface {
	// List retrieves all categories in store order.
	List(ctx context.Context) ([]*entity.Category, error)
	// GetBySlug retrieves a category by slug.
	// Returns (nil, nil) if no category has the slug.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// Create inserts the category and fills in the assigned ID.
	// A name or slug collision surfaces as entity.ErrConflict.
	Create(ctx context.Context, category *entity.Category) error
}
