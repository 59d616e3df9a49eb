// ABOUTME: JSON error response helper for middleware
// ABOUTME: Keeps middleware rejections in the API's error envelope

package middleware

import (
	"encoding/json"
	"net/http"

	"serversizer/models"
)

// writeJSONError writes an error response in the same JSON envelope
// the handlers use, so clients see one error format everywhere.
func writeJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
