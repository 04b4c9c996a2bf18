package domain

import "time"

// Field keys used in ValidationErrors.
const (
	FieldPrincipal = "principal"
	FieldRate      = "rate"
	FieldYears     = "years"
	FieldFrequency = "frequency"
)

type CalculationInput struct {
	Principal            float64 `json:"principal"`
	AnnualRatePercent    float64 `json:"rate"`
	Years                float64 `json:"years"`
	CompoundingFrequency float64 `json:"frequency"` // times per year
}

type CalculationResult struct {
	TotalAmount    float64 `json:"totalAmount"`
	InterestEarned float64 `json:"interestEarned"`
}

// ValidationErrors maps a field key to a message. A missing key means the
// field is valid.
type ValidationErrors map[string]string

type DisplayResult struct {
	TotalAmount    string `json:"totalAmount"`
	InterestEarned string `json:"interestEarned"`
}

type CalculationReport struct {
	ID           string            `json:"id"`
	Input        CalculationInput  `json:"input"`
	Result       CalculationResult `json:"result"`
	Display      DisplayResult     `json:"display"`
	Explanation  string            `json:"explanation,omitempty"`
	CalculatedAt time.Time         `json:"calculatedAt"`
}
