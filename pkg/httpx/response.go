package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire shape of every response: a success flag plus either
// a result payload or a human-readable message.
type Envelope struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteResult writes a successful envelope with the given status code.
func WriteResult(w http.ResponseWriter, code int, result any) {
	writeJSON(w, code, Envelope{Success: true, Result: result})
}

// WriteError writes a failed envelope with the given status code.
func WriteError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache prevents caching of sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
