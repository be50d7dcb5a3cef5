package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type BreakingNewsRepository interface {
	// GetActive retrieves the single most recently created item with
	// active = TRUE. Returns (nil, nil) when no item is active.
	GetActive(ctx context.Context) (*entity.BreakingNews, error)
	// Get retrieves an item by its ID. Returns (nil, nil) when not found.
	Get(ctx context.Context, id int64) (*entity.BreakingNews, error)
	// Create inserts the item and fills in the assigned ID and CreatedAt.
	Create(ctx context.Context, news *entity.BreakingNews) error
	// Update writes the full row for the item's ID.
	// Returns entity.ErrNotFound if no such row exists.
	Update(ctx context.Context, news *entity.BreakingNews) error
}
