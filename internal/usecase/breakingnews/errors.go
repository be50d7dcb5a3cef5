// Package breakingnews provides use cases for the breaking-news banner.
package breakingnews

import "errors"

// Sentinel errors for breaking-news use case operations.
var (
	// ErrBreakingNewsNotFound indicates that the requested item was not found.
	ErrBreakingNewsNotFound = errors.New("breaking news not found")

	// ErrInvalidBreakingNewsID indicates that the provided ID is invalid.
	ErrInvalidBreakingNewsID = errors.New("invalid breaking news ID")
)
