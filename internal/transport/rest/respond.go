// Package rest contains the HTTP handlers for the gateway API. Every
// endpoint speaks JSON and errors use the uniform envelope
// {"error": {"code": ..., "message": ...}}.
package rest

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the envelope.
const (
	codeValidation  = "VALIDATION_ERROR"
	codeNotFound    = "NOT_FOUND"
	codeInternal    = "INTERNAL"
	codeUnavailable = "SERVICE_UNAVAILABLE"
)

const internalMessage = "Internal server error"

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}
