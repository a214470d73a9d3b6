package handlers

import (
	"net/http"
)

// Health odpowiada na GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{Status: "ok"})
}

// NotFound zwraca kopertę fail dla nieznanych ścieżek
func NotFound(w http.ResponseWriter, _ *http.Request) {
	fail(w, http.StatusNotFound, msgRouteNotFound)
}

// MethodNotAllowed zwraca kopertę fail dla nieobsługiwanych metod
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	fail(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
