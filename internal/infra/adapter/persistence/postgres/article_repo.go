package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// articleColumns is the select list shared by every article query; the scan
// order in scanArticle must match it.
const articleColumns = `id, title, slug, excerpt, content, featured_image, category_id, author,
       published_at, views, featured, published, seo_title, meta_description, tags`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(row interface{ Scan(...interface{}) error }) (*entity.Article, error) {
	var article entity.Article
	err := row.Scan(&article.ID, &article.Title, &article.Slug, &article.Excerpt,
		&article.Content, &article.FeaturedImage, &article.CategoryID, &article.Author,
		&article.PublishedAt, &article.Views, &article.Featured, &article.Published,
		&article.SeoTitle, &article.MetaDescription, pq.Array(&article.Tags))
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	defer observe("select_articles")()
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter)

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY published_at DESC`, articleColumns, whereClause)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, filter.Offset)
	}

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("get_article")()
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	defer observe("get_article_by_slug")()
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE slug = $1
LIMIT 1`, articleColumns)
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observe("insert_article")()
	// published_at and views take their column defaults (now, 0) and come
	// back with the assigned id.
	const query = `
INSERT INTO articles
       (title, slug, excerpt, content, featured_image, category_id, author,
        featured, published, seo_title, meta_description, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, published_at, views`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Slug, article.Excerpt, article.Content,
		article.FeaturedImage, article.CategoryID, article.Author,
		article.Featured, article.Published, article.SeoTitle,
		article.MetaDescription, pq.Array(article.Tags),
	).Scan(&article.ID, &article.PublishedAt, &article.Views)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer observe("update_article")()
	const query = `
UPDATE articles SET
       title            = $1,
       slug             = $2,
       excerpt          = $3,
       content          = $4,
       featured_image   = $5,
       category_id      = $6,
       author           = $7,
       published_at     = $8,
       featured         = $9,
       published        = $10,
       seo_title        = $11,
       meta_description = $12,
       tags             = $13
WHERE id = $14`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Slug, article.Excerpt, article.Content,
		article.FeaturedImage, article.CategoryID, article.Author,
		article.PublishedAt, article.Featured, article.Published,
		article.SeoTitle, article.MetaDescription, pq.Array(article.Tags),
		article.ID,
	)
	if err != nil {
		return wrapErr("Update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	defer observe("delete_article")()
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// IncrementViews bumps the counter in one statement so concurrent increments
// cannot lose updates.
func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) (bool, error) {
	defer observe("increment_article_views")()
	const query = `UPDATE articles SET views = views + 1 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("IncrementViews: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, queryText string) ([]*entity.Article, error) {
	defer observe("search_articles")()
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE published = TRUE
  AND (title   ILIKE $1
    OR excerpt ILIKE $1
    OR content ILIKE $1)
ORDER BY published_at DESC`, articleColumns)
	param := escapeLike(queryText)
	rows, err := repo.db.QueryContext(ctx, query, param)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
