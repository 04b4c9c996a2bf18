package http

import (
	"bytes"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"compound-interest/domain"
	"compound-interest/repository"
	"compound-interest/service"
)

func newComparisonHandler() *ComparisonHandler {
	interest := service.NewInterestService(
		repository.NewCalculationRepositoryMemory(0),
		repository.NewMemoryCache(),
		service.NewFormatter(""),
		nil,
	)
	return NewComparisonHandler(service.NewComparisonService(interest))
}

func postCompare(handler *ComparisonHandler, body string, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/interest/compare", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	handler.CompareFrequencies(w, req)
	return w
}

func TestCompareHandler_OK(t *testing.T) {
	w := postCompare(newComparisonHandler(), `{"principal": 10000, "rate": 8, "years": 5, "frequencies": [1, 12]}`, "application/json")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.FrequencyComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if result.BestFrequency != 12 || len(result.Scenarios) != 2 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestCompareHandler_UnsupportedMediaType(t *testing.T) {
	w := postCompare(newComparisonHandler(), `{}`, "text/plain")

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestCompareHandler_InvalidPrincipal(t *testing.T) {
	w := postCompare(newComparisonHandler(), `{"principal": 0, "rate": 8, "years": 5}`, "application/json")

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestCompareHandler_NoValidFrequency(t *testing.T) {
	w := postCompare(newComparisonHandler(), `{"principal": 100, "rate": 8, "years": 5, "frequencies": [0]}`, "application/json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCompareHandler_Overflow(t *testing.T) {
	w := postCompare(newComparisonHandler(), `{"principal": 1e300, "rate": 1000, "years": 100, "frequencies": [1, 12]}`, "application/json")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.FrequencyComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(result.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(result.Scenarios))
	}
	for _, s := range result.Scenarios {
		if !math.IsInf(s.Result.TotalAmount, 1) || s.Display.TotalAmount != "NPR∞" {
			t.Errorf("expected infinite scenario, got %+v", s)
		}
	}
}

func TestCompareHandler_BodyTooLarge(t *testing.T) {
	body := `{"principal": 100, "pad": "` + strings.Repeat("x", maxRequestBody) + `"}`
	w := postCompare(newComparisonHandler(), body, "application/json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
