package http

import (
	"errors"
	"log"
	"math"
	"net/http"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"compound-interest/domain"
	"compound-interest/service"
)

type InterestHandler struct {
	service *service.InterestService
}

func NewInterestHandler(service *service.InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

// calculateRequest uses pointers so a missing field can be told apart from
// zero. Missing fields are validated as NaN.
type calculateRequest struct {
	Principal *float64 `json:"principal"`
	Rate      *float64 `json:"rate"`
	Years     *float64 `json:"years"`
	Frequency *float64 `json:"frequency"`
}

func (c calculateRequest) toInput() domain.CalculationInput {
	return domain.CalculationInput{
		Principal:            valueOrNaN(c.Principal),
		AnnualRatePercent:    valueOrNaN(c.Rate),
		Years:                valueOrNaN(c.Years),
		CompoundingFrequency: valueOrNaN(c.Frequency),
	}
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func (h *InterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.respond(w, r, req.toInput())
}

// CalculateForm accepts the calculator form fields as submitted by a
// browser. Each field is read up to its first non-numeric character;
// years and frequency only take the leading integer digits.
func (h *InterestHandler) CalculateForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	input := domain.CalculationInput{
		Principal:            parseNumber(r.PostForm.Get(domain.FieldPrincipal)),
		AnnualRatePercent:    parseNumber(r.PostForm.Get(domain.FieldRate)),
		Years:                parseWholeNumber(r.PostForm.Get(domain.FieldYears)),
		CompoundingFrequency: parseWholeNumber(r.PostForm.Get(domain.FieldFrequency)),
	}

	h.respond(w, r, input)
}

func (h *InterestHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.service.History())
}

func (h *InterestHandler) respond(w http.ResponseWriter, r *http.Request, input domain.CalculationInput) {
	report, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationErrors(w, verr.Fields)
			return
		}
		log.Printf("Error calculating interest: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

var (
	numberPrefix      = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	wholeNumberPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// parseNumber reads the longest leading decimal number ("12abc" is 12).
// Blank or non-numeric input is NaN.
func parseNumber(raw string) float64 {
	return parsePrefix(numberPrefix, raw)
}

// parseWholeNumber reads only leading integer digits ("2.9" is 2, "1e3" is 1).
func parseWholeNumber(raw string) float64 {
	return parsePrefix(wholeNumberPrefix, raw)
}

func parsePrefix(pattern *regexp.Regexp, raw string) float64 {
	match := pattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return math.NaN()
	}
	unsigned := strings.TrimLeft(match, "+-")
	if unsigned == "Infinity" {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	v, err := cast.ToFloat64E(match)
	if err != nil {
		return math.NaN()
	}
	return v
}
