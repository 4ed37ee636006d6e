package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jasvilladarez/ello-go/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.CategoryStream{Categories: categories}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an API error body in the shape clients decode into
// [models.ErrorResponse].
func WriteError(w http.ResponseWriter, statusCode int, detail string) {
	var body models.ErrorResponse
	body.Errors.Status = strconv.Itoa(statusCode)
	body.Errors.Title = http.StatusText(statusCode)
	body.Errors.Detail = detail

	_, _ = WriteJSON(w, body, statusCode)
}
