package service

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"compound-interest/domain"
	"compound-interest/repository"
)

// ValidationError is returned when one or more input fields are rejected.
type ValidationError struct {
	Fields domain.ValidationErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid input: %s", strings.Join(keys, ", "))
}

type InterestService struct {
	repo      repository.CalculationRepository
	cache     repository.CacheRepository
	formatter Formatter
	explainer *ExplanationService
	now       func() time.Time
}

// NewInterestService creates a new InterestService. explainer may be nil.
func NewInterestService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	formatter Formatter,
	explainer *ExplanationService,
) *InterestService {
	return &InterestService{
		repo:      repo,
		cache:     cache,
		formatter: formatter,
		explainer: explainer,
		now:       time.Now,
	}
}

// Calculate validates the input and, when every field passes, computes the
// compounded amount and records the report.
func (s *InterestService) Calculate(
	ctx context.Context,
	input domain.CalculationInput,
) (domain.CalculationReport, error) {
	if errs := Validate(input); len(errs) > 0 {
		return domain.CalculationReport{}, &ValidationError{Fields: errs}
	}

	result := s.compute(input)

	report := domain.CalculationReport{
		ID:           uuid.NewString(),
		Input:        input,
		Result:       result,
		Display:      s.formatter.Result(result),
		CalculatedAt: s.now().UTC(),
	}
	if s.explainer != nil {
		report.Explanation = s.explainer.Explain(ctx, input, result)
	}

	// Saving is not critical to the response
	if err := s.repo.Save(report); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	return report, nil
}

// Evaluate validates and computes without recording a report.
func (s *InterestService) Evaluate(input domain.CalculationInput) (domain.CalculationResult, error) {
	if errs := Validate(input); len(errs) > 0 {
		return domain.CalculationResult{}, &ValidationError{Fields: errs}
	}
	return s.compute(input), nil
}

// History returns the saved reports, oldest first.
func (s *InterestService) History() []domain.CalculationReport {
	return s.repo.List()
}

func (s *InterestService) Formatter() Formatter {
	return s.formatter
}

// compute memoises Compute in the cache. Cache failures only cost a
// recomputation.
func (s *InterestService) compute(input domain.CalculationInput) domain.CalculationResult {
	key := cacheKey(input)

	if raw, ok := s.cache.Get(key); ok {
		var cached domain.CalculationResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached
		}
		log.Printf("Warning: discarding unreadable cached calculation %s", key)
	}

	result := Compute(input)

	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode calculation for cache: %v", err)
		return result
	}
	if err := s.cache.Set(key, string(raw)); err != nil {
		log.Printf("Warning: failed to cache calculation: %v", err)
	}
	return result
}

func cacheKey(input domain.CalculationInput) string {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(input.Principal))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(input.AnnualRatePercent))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(input.Years))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(input.CompoundingFrequency))
	return fmt.Sprintf("%s%016x", calculationCacheKeyPrefix, xxhash.Sum64(buf[:]))
}
