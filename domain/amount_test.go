package domain

import (
	"math"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestCalculationResultJSON_Finite(t *testing.T) {
	raw, err := json.Marshal(CalculationResult{TotalAmount: 1050, InterestEarned: 50.25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"totalAmount":1050,"interestEarned":50.25}` {
		t.Errorf("unexpected JSON %s", raw)
	}
}

func TestCalculationResultJSON_NonFinite(t *testing.T) {
	in := CalculationResult{TotalAmount: math.Inf(1), InterestEarned: math.NaN()}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"totalAmount":"Infinity","interestEarned":"NaN"}` {
		t.Errorf("unexpected JSON %s", raw)
	}

	var out CalculationResult
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(out.TotalAmount, 1) || !math.IsNaN(out.InterestEarned) {
		t.Errorf("unexpected decoded result %+v", out)
	}
}

func TestCalculationReportJSON_NestedResult(t *testing.T) {
	report := CalculationReport{
		ID:     "r1",
		Result: CalculationResult{TotalAmount: math.Inf(1), InterestEarned: math.Inf(1)},
	}

	raw, err := json.Marshal([]CalculationReport{report})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), `"totalAmount":"Infinity"`) {
		t.Errorf("expected Infinity string in %s", raw)
	}
}

func TestFrequencyScenarioJSON_RoundTrip(t *testing.T) {
	in := FrequencyScenario{
		CompoundingFrequency: 12,
		Label:                "monthly",
		Result:               CalculationResult{TotalAmount: math.Inf(1), InterestEarned: math.Inf(1)},
		GainOverAnnual:       math.NaN(),
	}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out FrequencyScenario
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CompoundingFrequency != 12 || out.Label != "monthly" {
		t.Errorf("unexpected scenario %+v", out)
	}
	if !math.IsInf(out.Result.TotalAmount, 1) || !math.IsNaN(out.GainOverAnnual) {
		t.Errorf("non-finite values lost: %+v", out)
	}
}

func TestJSONAmount_RejectsGarbage(t *testing.T) {
	var out CalculationResult
	if err := json.Unmarshal([]byte(`{"totalAmount":"lots"}`), &out); err == nil {
		t.Errorf("expected error for non-numeric amount")
	}
}
