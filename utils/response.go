package utils

import (
	"encoding/json"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// JSON is shorthand for RespondWithJSON.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	RespondWithJSON(w, statusCode, data)
}

// Error responds with {"error": msg}.
func Error(w http.ResponseWriter, code int, msg string) {
	RespondWithError(w, code, msg)
}

func ToJSON(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		return []byte("null")
	}
	return b
}

type M map[string]interface{}
