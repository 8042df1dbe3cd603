package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every client or server error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONResponse writes the given data as a JSON response with the specified status code.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONErrorResponse writes an error message as a JSON response with the specified status code.
func JSONErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, ErrorResponse{Error: message})
}

// JSONCreatedResponse writes data with 201 Created and a Location header pointing at the new resource.
func JSONCreatedResponse(w http.ResponseWriter, location string, data any) {
	w.Header().Set("Location", location)
	JSONResponse(w, http.StatusCreated, data)
}
