package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/categories.sql
var seedCategoriesSQL string

func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id    SERIAL PRIMARY KEY,
    name  TEXT NOT NULL UNIQUE,
    slug  TEXT NOT NULL UNIQUE,
    color TEXT NOT NULL DEFAULT '#3B82F6'
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id               SERIAL PRIMARY KEY,
    title            TEXT NOT NULL,
    slug             TEXT NOT NULL UNIQUE,
    excerpt          TEXT NOT NULL,
    content          TEXT NOT NULL,
    featured_image   TEXT,
    category_id      INTEGER REFERENCES categories(id),
    author           TEXT NOT NULL,
    published_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    views            BIGINT NOT NULL DEFAULT 0,
    featured         BOOLEAN NOT NULL DEFAULT FALSE,
    published        BOOLEAN NOT NULL DEFAULT TRUE,
    seo_title        TEXT,
    meta_description TEXT,
    tags             TEXT[]
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS breaking_news (
    id         SERIAL PRIMARY KEY,
    title      TEXT NOT NULL,
    url        TEXT NOT NULL,
    active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY published_at DESC backs every article listing
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_featured ON articles(featured) WHERE featured = TRUE`,
		// the banner query filters on active and sorts by created_at
		`CREATE INDEX IF NOT EXISTS idx_breaking_news_active ON breaking_news(created_at DESC) WHERE active = TRUE`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search; ignore errors when the extension
	// is unavailable (missing superuser rights).
	_, _ = pool.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_excerpt_gin ON articles USING gin(excerpt gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_content_gin ON articles USING gin(content gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = pool.Exec(idx)
	}

	// Seed the default categories; duplicates are skipped.
	if _, err := pool.Exec(seedCategoriesSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(pool *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS breaking_news`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS categories`,
	}
	for _, stmt := range dropStatements {
		if _, err := pool.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
