package entity

import (
	"fmt"
	"regexp"
)

const (
	// maxSlugLength bounds slugs so they stay usable in URLs and indexes.
	maxSlugLength = 200

	// maxTitleLength bounds titles to keep list payloads reasonable.
	maxTitleLength = 500
)

// slugPattern matches URL-safe slugs: lowercase alphanumerics separated by
// single hyphens ("breaking-news-2026").
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// hexColorPattern matches CSS hex colors like "#3B82F6" or "#fff".
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateSlug validates the format of a URL slug.
// Returns a ValidationError naming the given field if the slug is empty,
// too long, or not URL-safe.
func ValidateSlug(field, slug string) *ValidationError {
	if slug == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{
			Field:   field,
			Message: "must contain only lowercase letters, digits and hyphens",
		}
	}
	return nil
}

// ValidateTitle checks that a title is present and within bounds.
func ValidateTitle(field, title string) *ValidationError {
	if title == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateHexColor checks that a color is a CSS hex value.
func ValidateHexColor(field, color string) *ValidationError {
	if !hexColorPattern.MatchString(color) {
		return &ValidationError{Field: field, Message: "must be a hex color like #3B82F6"}
	}
	return nil
}
