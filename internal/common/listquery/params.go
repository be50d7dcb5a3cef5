package listquery

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents windowing query parameters from an HTTP request.
// A zero Limit means the caller asked for no limit at all.
type Params struct {
	Limit  int // Items per request; 0 when no limit was requested
	Offset int // Rows skipped before the first returned item
}

// ParseQueryParams parses limit/offset parameters from the request query
// string. Absent parameters impose no constraint: Limit stays 0 and the
// store returns every matching row.
//
// Query parameters:
//   - limit: Items per request (must be between 1 and config.MaxLimit)
//   - offset: Rows to skip (must be a non-negative integer)
//
// Returns an error if parameters are present but invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	var params Params

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	return params, nil
}
