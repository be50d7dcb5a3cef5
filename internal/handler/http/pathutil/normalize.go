package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// Article routes
	{Pattern: regexp.MustCompile(`^/api/articles/\d+/view$`), Template: "/api/articles/:id/view"},
	{Pattern: regexp.MustCompile(`^/api/articles/\d+$`), Template: "/api/articles/:id"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/:slug"},

	// Category routes
	{Pattern: regexp.MustCompile(`^/api/categories/[^/]+$`), Template: "/api/categories/:slug"},

	// Breaking news routes
	{Pattern: regexp.MustCompile(`^/api/breaking-news/\d+$`), Template: "/api/breaking-news/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs or slugs (e.g., /api/articles/123) to template
// format (e.g., /api/articles/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/123/view")     // "/api/articles/:id/view"
//	NormalizePath("/api/articles/my-story")     // "/api/articles/:slug"
//	NormalizePath("/api/categories/politics")   // "/api/categories/:slug"
//	NormalizePath("/health")                    // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/articles/123?x=1")      // "/api/articles/:id"
//	NormalizePath("/api/articles/123/")         // "/api/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
