// Package response writes the JSON bodies of the public HTTP contract.
//
// Success payloads are raw JSON values (arrays, records, object literals);
// every error is a `{"message": ...}` body with the matching status code.
// No error escapes to a generic failure page.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message writes a `{"message": msg}` body with the given status code.
// Used for every error in the taxonomy and for confirmation messages.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
