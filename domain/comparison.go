package domain

type FrequencyComparisonInput struct {
	Principal         float64   `json:"principal"`
	AnnualRatePercent float64   `json:"rate"`
	Years             float64   `json:"years"`
	Frequencies       []float64 `json:"frequencies,omitempty"`
}

type FrequencyScenario struct {
	CompoundingFrequency float64           `json:"frequency"`
	Label                string            `json:"label"`
	Result               CalculationResult `json:"result"`
	Display              DisplayResult     `json:"display"`
	GainOverAnnual       float64           `json:"gainOverAnnual"`
}

type FrequencyComparisonResult struct {
	BestFrequency float64             `json:"bestFrequency"`
	Scenarios     []FrequencyScenario `json:"scenarios"`
}
