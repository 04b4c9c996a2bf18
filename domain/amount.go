package domain

import (
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// jsonAmount encodes non-finite values as the strings "Infinity",
// "-Infinity" and "NaN", which plain JSON numbers cannot carry.
type jsonAmount float64

func (a jsonAmount) MarshalJSON() ([]byte, error) {
	v := float64(a)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (a *jsonAmount) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*a = jsonAmount(math.NaN())
		return nil
	case `"Infinity"`:
		*a = jsonAmount(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*a = jsonAmount(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	*a = jsonAmount(v)
	return nil
}

type resultJSON struct {
	TotalAmount    jsonAmount `json:"totalAmount"`
	InterestEarned jsonAmount `json:"interestEarned"`
}

func (r CalculationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		TotalAmount:    jsonAmount(r.TotalAmount),
		InterestEarned: jsonAmount(r.InterestEarned),
	})
}

func (r *CalculationResult) UnmarshalJSON(b []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.TotalAmount = float64(raw.TotalAmount)
	r.InterestEarned = float64(raw.InterestEarned)
	return nil
}

type scenarioJSON struct {
	CompoundingFrequency float64           `json:"frequency"`
	Label                string            `json:"label"`
	Result               CalculationResult `json:"result"`
	Display              DisplayResult     `json:"display"`
	GainOverAnnual       jsonAmount        `json:"gainOverAnnual"`
}

func (s FrequencyScenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(scenarioJSON{
		CompoundingFrequency: s.CompoundingFrequency,
		Label:                s.Label,
		Result:               s.Result,
		Display:              s.Display,
		GainOverAnnual:       jsonAmount(s.GainOverAnnual),
	})
}

func (s *FrequencyScenario) UnmarshalJSON(b []byte) error {
	var raw scenarioJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = FrequencyScenario{
		CompoundingFrequency: raw.CompoundingFrequency,
		Label:                raw.Label,
		Result:               raw.Result,
		Display:              raw.Display,
		GainOverAnnual:       float64(raw.GainOverAnnual),
	}
	return nil
}
