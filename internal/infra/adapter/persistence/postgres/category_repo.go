package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	defer observe("list_categories")()
	const query = `
SELECT id, name, slug, color
FROM categories`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Color); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	defer observe("get_category_by_slug")()
	const query = `
SELECT id, name, slug, color
FROM categories
WHERE slug = $1
LIMIT 1`
	var category entity.Category
	err := repo.db.QueryRowContext(ctx, query, slug).
		Scan(&category.ID, &category.Name, &category.Slug, &category.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return &category, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	defer observe("insert_category")()
	const query = `
INSERT INTO categories (name, slug, color)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Color,
	).Scan(&category.ID)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}
