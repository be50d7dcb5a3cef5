package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type BreakingNewsRepo struct {
	db *sql.DB
}

func NewBreakingNewsRepo(db *sql.DB) repository.BreakingNewsRepository {
	return &BreakingNewsRepo{db: db}
}

func (repo *BreakingNewsRepo) GetActive(ctx context.Context) (*entity.BreakingNews, error) {
	defer observe("get_active_breaking_news")()
	const query = `
SELECT id, title, url, active, created_at
FROM breaking_news
WHERE active = TRUE
ORDER BY created_at DESC
LIMIT 1`
	var news entity.BreakingNews
	err := repo.db.QueryRowContext(ctx, query).
		Scan(&news.ID, &news.Title, &news.URL, &news.Active, &news.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetActive: %w", err)
	}
	return &news, nil
}

func (repo *BreakingNewsRepo) Get(ctx context.Context, id int64) (*entity.BreakingNews, error) {
	defer observe("get_breaking_news")()
	const query = `
SELECT id, title, url, active, created_at
FROM breaking_news
WHERE id = $1`
	var news entity.BreakingNews
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&news.ID, &news.Title, &news.URL, &news.Active, &news.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &news, nil
}

func (repo *BreakingNewsRepo) Create(ctx context.Context, news *entity.BreakingNews) error {
	defer observe("insert_breaking_news")()
	const query = `
INSERT INTO breaking_news (title, url, active)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		news.Title, news.URL, news.Active,
	).Scan(&news.ID, &news.CreatedAt)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *BreakingNewsRepo) Update(ctx context.Context, news *entity.BreakingNews) error {
	defer observe("update_breaking_news")()
	const query = `
UPDATE breaking_news SET
       title  = $1,
       url    = $2,
       active = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		news.Title, news.URL, news.Active, news.ID,
	)
	if err != nil {
		return wrapErr("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}
