// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Category,
// Article and BreakingNews, along with their validation rules and
// domain-specific errors.
package entity

// DefaultCategoryColor is the hex color assigned to categories created
// without an explicit color.
const DefaultCategoryColor = "#3B82F6"

// Category represents a reader-facing article category.
// Name and slug are each globally unique; uniqueness is enforced by the
// store, not pre-checked here.
type Category struct {
	ID    int64
	Name  string
	Slug  string
	Color string
}
