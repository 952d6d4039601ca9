package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	app_errors "imagevault/internal/errors"
)

// This file contains the shared envelopes for API responses and the helpers
// that write them.

// ErrorResponse is the Content Service error envelope.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Resource not found"`
}

// SuccessResponse is the Content Service success envelope.
type SuccessResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ChatErrorResponse is the error body of the chat front-end.
type ChatErrorResponse struct {
	Error string `json:"error" example:"No message provided"`
}

// respondWithError maps business-layer errors to HTTP status codes and writes
// the error envelope.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = detail(err, app_errors.ErrValidation)
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = detail(err, app_errors.ErrConflict)
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "Access denied"
	case errors.Is(err, app_errors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = detail(err, app_errors.ErrUnauthorized)
	case errors.Is(err, app_errors.ErrTooLarge):
		statusCode = http.StatusRequestEntityTooLarge
		message = detail(err, app_errors.ErrTooLarge)
	default:
		// Unhandled errors never leak their text to the client.
		statusCode = http.StatusInternalServerError
		message = "Internal Server Error"
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Status: "error", Message: message})
}

// detail strips the sentinel prefix from a wrapped error, leaving the part
// the service wrote for the user. "unauthorized: invalid API key" becomes
// "Invalid API key".
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" || msg == sentinel.Error() {
		msg = sentinel.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// respondWithSuccess wraps data in the success envelope.
func respondWithSuccess(w http.ResponseWriter, code int, message string, data any) {
	respondWithJSON(w, code, SuccessResponse{Status: "success", Message: message, Data: data})
}

// respondWithChatError writes the chat front-end's {"error": ...} body.
func respondWithChatError(w http.ResponseWriter, code int, message string) {
	slog.Warn("Responding with chat error", "status_code", code, "client_message", message)
	respondWithJSON(w, code, ChatErrorResponse{Error: message})
}

// respondWithJSON marshals a payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
