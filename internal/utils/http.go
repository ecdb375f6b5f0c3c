package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/cinetrack/models"
)

// WriteJSON writes data as an application/json body with statusCode. A value
// that cannot be marshalled is answered with 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a {"message": ...} JSON body with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	// the message is always a plain string, so encoding cannot fail
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: message})
}
