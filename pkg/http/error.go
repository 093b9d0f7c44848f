package http

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse структура тела ошибки HTTP API
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError отправляет клиенту JSON с описанием ошибки и указанным статусом
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
