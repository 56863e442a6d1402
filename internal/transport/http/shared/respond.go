// Package shared centralizes the JSON response envelope used by every API
// handler. Success bodies carry success:true plus a payload key; failures
// carry success:false and a single client-facing error string.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "lifelink/pkg/domain-errors"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON writes a success envelope with the given payload key.
func WriteJSON(w http.ResponseWriter, status int, key string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		key:       payload,
	})
}

// WriteError translates a domain error into its HTTP status and the failure
// envelope. Errors that never passed through a domain boundary are masked as
// internal so raw driver messages do not leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		message = de.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: message})
}
