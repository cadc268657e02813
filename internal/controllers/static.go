package controllers

import (
	"net/http"
)

// Greeting is the body served on GET /.
const Greeting = "Welcome to the Gemini API Backend!"

// GetHome returns a plain text greeting so callers can check the server is up.
func GetHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting))
}

// HealthCheck returns a simple health status for monitoring.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
