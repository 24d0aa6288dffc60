package response

import (
	"encoding/json"
	"net/http"

	"lostfound-backend/models"
)

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error sends a JSON error body with an optional detail string.
func Error(w http.ResponseWriter, status int, message, details string) {
	JSON(w, status, models.ErrorResponse{Error: message, Details: details})
}

// Decode decodes JSON request body into destination
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body", err.Error())
		return false
	}

	return true
}
