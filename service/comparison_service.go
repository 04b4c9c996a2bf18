package service

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"compound-interest/domain"
)

type ComparisonService struct {
	interestService *InterestService
}

func NewComparisonService(interestService *InterestService) *ComparisonService {
	return &ComparisonService{interestService: interestService}
}

// CompareFrequencies computes the same deposit under several compounding
// frequencies and ranks them by final amount.
func (s *ComparisonService) CompareFrequencies(
	input domain.FrequencyComparisonInput,
) (domain.FrequencyComparisonResult, error) {
	frequencies := input.Frequencies
	if len(frequencies) == 0 {
		frequencies = DefaultComparisonFrequencies
	}
	if len(frequencies) > MaxComparisonFrequencies {
		return domain.FrequencyComparisonResult{}, fmt.Errorf("at most %d frequencies can be compared", MaxComparisonFrequencies)
	}

	// Baseline for GainOverAnnual; rejects bad principal/rate/years up front.
	annual, err := s.interestService.Evaluate(domain.CalculationInput{
		Principal:            input.Principal,
		AnnualRatePercent:    input.AnnualRatePercent,
		Years:                input.Years,
		CompoundingFrequency: 1,
	})
	if err != nil {
		return domain.FrequencyComparisonResult{}, err
	}

	formatter := s.interestService.Formatter()
	seen := make(map[float64]bool, len(frequencies))
	scenarios := []domain.FrequencyScenario{}

	for _, frequency := range frequencies {
		if seen[frequency] {
			continue
		}
		seen[frequency] = true

		result, err := s.interestService.Evaluate(domain.CalculationInput{
			Principal:            input.Principal,
			AnnualRatePercent:    input.AnnualRatePercent,
			Years:                input.Years,
			CompoundingFrequency: frequency,
		})
		if err != nil {
			log.Printf("Warning: skipping frequency %g: %v", frequency, err)
			continue
		}

		scenarios = append(scenarios, domain.FrequencyScenario{
			CompoundingFrequency: frequency,
			Label:                FrequencyLabel(frequency),
			Result:               result,
			Display:              formatter.Result(result),
			GainOverAnnual:       result.TotalAmount - annual.TotalAmount,
		})
	}

	if len(scenarios) == 0 {
		return domain.FrequencyComparisonResult{}, errors.New("no valid compounding frequency to compare")
	}

	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Result.TotalAmount > scenarios[j].Result.TotalAmount
	})

	return domain.FrequencyComparisonResult{
		BestFrequency: scenarios[0].CompoundingFrequency,
		Scenarios:     scenarios,
	}, nil
}
