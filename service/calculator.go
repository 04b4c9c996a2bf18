package service

import (
	"math"

	"compound-interest/domain"
)

// Compute returns the compounded total and the interest earned. Inputs are
// expected to have passed Validate; no rounding is applied.
func Compute(input domain.CalculationInput) domain.CalculationResult {
	r := input.AnnualRatePercent / 100
	n := input.CompoundingFrequency
	t := input.Years

	total := input.Principal * math.Pow(1+r/n, n*t)

	return domain.CalculationResult{
		TotalAmount:    total,
		InterestEarned: total - input.Principal,
	}
}

// Validate checks every field independently and returns the failing ones.
// An empty map means the input can be computed.
func Validate(input domain.CalculationInput) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if !isFinite(input.Principal) || input.Principal <= 0 {
		errs[domain.FieldPrincipal] = MsgInvalidPrincipal
	}
	if !isFinite(input.AnnualRatePercent) || input.AnnualRatePercent <= 0 {
		errs[domain.FieldRate] = MsgInvalidRate
	}
	if !isFinite(input.Years) || input.Years <= 0 {
		errs[domain.FieldYears] = MsgInvalidYears
	}
	if !isFinite(input.CompoundingFrequency) || input.CompoundingFrequency < MinCompoundingFrequency {
		errs[domain.FieldFrequency] = MsgInvalidFrequency
	}

	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
