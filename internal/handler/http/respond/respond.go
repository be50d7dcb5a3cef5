// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"newsdesk/pkg/config"
)

// errorBody is the uniform error envelope.
// Fields is only present for validation failures.
type errorBody struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Message writes a JSON error envelope with the given status code and message.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, errorBody{Message: msg})
}

// Error writes the error's message in the standard envelope.
// Use only for errors whose text is safe to show to clients.
func Error(w http.ResponseWriter, code int, err error) {
	Message(w, code, err.Error())
}

// Invalid writes a 400 envelope enumerating every violating field.
func Invalid(w http.ResponseWriter, msg string, fields []string) {
	JSON(w, http.StatusBadRequest, errorBody{Message: msg, Fields: fields})
}

// SafeError sanitizes error messages before returning them to users.
// 5xx errors are logged with masked details and returned as a generic
// message in production. Outside production the sanitized detail is
// included to ease debugging.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 {
		Message(w, code, err.Error())
		return
	}

	sanitized := SanitizeError(err)
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", sanitized))

	if config.IsProduction() {
		Message(w, code, "internal server error")
		return
	}
	Message(w, code, sanitized)
}
