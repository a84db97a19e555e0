package transport

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error    string            `json:"error"`
	Redirect string            `json:"redirect,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// WriteDenied tells the client where to go after a failed access check.
func WriteDenied(w http.ResponseWriter, status int, redirect string) {
	message := "forbidden"
	if status == http.StatusUnauthorized {
		message = "unauthorized"
	}
	WriteJSON(w, status, ErrorResponse{
		Error:    message,
		Redirect: redirect,
	})
}
