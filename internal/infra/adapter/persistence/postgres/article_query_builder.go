package postgres

import (
	"fmt"
	"strings"

	"newsdesk/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// Centralizing the clause keeps the $N placeholder numbering correct when
// LIMIT/OFFSET parameters are appended by the caller.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for the filter.
// All provided options are AND-combined; it returns an empty clause when the
// filter carries no constraints.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", paramIndex))
		args = append(args, *filter.CategoryID)
		paramIndex++
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("featured = $%d", paramIndex))
		args = append(args, *filter.Featured)
		paramIndex++
	}
	if filter.Published != nil {
		conditions = append(conditions, fmt.Sprintf("published = $%d", paramIndex))
		args = append(args, *filter.Published)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike escapes LIKE/ILIKE metacharacters so a search query matches as a
// literal substring, and wraps it in wildcards.
func escapeLike(query string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(query) + "%"
}
