package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sky-take-out/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json;charset=UTF-8" and
// writes the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteResult writes the response envelope. Business outcomes, successful or
// not, always travel with HTTP 200; only the auth middleware passes another
// status.
//
// Example usage:
//
//	utils.WriteResult(w, models.Success(page), http.StatusOK)
//	utils.WriteResult(w, models.Error("unauthorized"), http.StatusUnauthorized)
func WriteResult(w http.ResponseWriter, result models.Result, statusCode int) error {
	_, err := WriteJSON(w, result, statusCode)
	return err
}
