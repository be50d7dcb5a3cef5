// Package requestid assigns each request an identifier that ties together
// the access log, error logs and the X-Request-ID response header.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey keeps the request id out of reach of other packages' context
// values.
type contextKey string

const (
	// RequestIDKey stores the request id in a context.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader carries the id on requests and responses.
	RequestIDHeader = "X-Request-ID"
)

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// FromContext returns the request id stored in ctx, or "" when none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Middleware echoes an incoming X-Request-ID, or mints a UUID when the
// client sent none. The id travels onward through the response header and
// the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
