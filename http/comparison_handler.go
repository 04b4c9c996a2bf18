package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"compound-interest/domain"
	"compound-interest/service"
)

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

func (h *ComparisonHandler) CompareFrequencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var input domain.FrequencyComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareFrequencies(input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationErrors(w, verr.Fields)
			return
		}
		log.Printf("Error comparing frequencies: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
