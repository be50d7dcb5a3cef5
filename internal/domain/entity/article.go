package entity

import "time"

// Article represents a published or draft news article.
//
// Content holds author-supplied raw markup that the presentation layer
// renders unescaped. Authors are trusted; the field is stored and served
// verbatim.
//
// Views only ever grows: the atomic view increment is the single mutation
// path, partial updates cannot touch it.
type Article struct {
	ID              int64
	Title           string
	Slug            string
	Excerpt         string
	Content         string
	FeaturedImage   *string
	CategoryID      *int64
	Author          string
	PublishedAt     time.Time
	Views           int64
	Featured        bool
	Published       bool
	SeoTitle        *string
	MetaDescription *string
	Tags            []string
}
