package service

const (
	MsgInvalidPrincipal = "Enter a valid principal (> 0)"
	MsgInvalidRate      = "Enter a valid rate (> 0)"
	MsgInvalidYears     = "Enter a valid time (> 0)"
	MsgInvalidFrequency = "Enter a valid frequency (>= 1)"

	MinCompoundingFrequency = 1.0
	DefaultCurrencyPrefix   = "NPR"

	// Prefix for memoised calculation results in the cache.
	calculationCacheKeyPrefix = "calc:"

	MaxComparisonFrequencies = 20
)

// DefaultComparisonFrequencies are annual, semi-annual, quarterly, monthly
// and daily compounding.
var DefaultComparisonFrequencies = []float64{1, 2, 4, 12, 365}
