package http

import (
	"bytes"
	"log"
	"net/http"

	json "github.com/goccy/go-json"

	"compound-interest/domain"
)

// maxRequestBody caps every decoded request body.
const maxRequestBody = 4 << 10

type validationResponse struct {
	Errors domain.ValidationErrors `json:"errors"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeValidationErrors(w http.ResponseWriter, errs domain.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: errs})
}
