package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Statusy koperty odpowiedzi
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope to wspólny kształt wszystkich odpowiedzi JSON
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Data zawiera pola zagnieżdżone w kopercie
type Data map[string]interface{}

func writeJSON(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("błąd kodowania odpowiedzi", "error", err)
	}
}

func success(w http.ResponseWriter, code int, message string, data Data) {
	env := Envelope{Status: StatusSuccess, Message: message}
	if data != nil {
		env.Data = data
	}
	writeJSON(w, code, env)
}

func fail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Status: StatusFail, Message: message})
}

func serverError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Envelope{Status: StatusError, Message: message})
}
