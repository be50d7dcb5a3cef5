package postgres

import (
	"time"

	"newsdesk/internal/observability/metrics"
)

// observe starts a timer for one store operation. The returned func records
// the elapsed time in the query-duration histogram; call it deferred so the
// observation covers scanning too.
func observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.RecordDBQuery(operation, time.Since(start))
	}
}
