package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"compound-interest/domain"
)

const (
	explanationTimeout   = 30 * time.Second
	explanationMaxTokens = 300
	explanationSystem    = "You are a personal finance tutor. Explain compound interest results in plain language, in at most three sentences, without giving investment advice."
)

// ExplanationService writes a short plain-language summary of a
// calculation. Without an API key it always uses the built-in text.
type ExplanationService struct {
	client    anthropic.Client
	model     anthropic.Model
	enabled   bool
	formatter Formatter
}

// NewExplanationService builds the client from apiKey. Extra options are
// applied after the key, e.g. option.WithBaseURL.
func NewExplanationService(apiKey string, formatter Formatter, opts ...option.RequestOption) *ExplanationService {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &ExplanationService{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.ModelClaude3_7SonnetLatest,
		enabled:   apiKey != "",
		formatter: formatter,
	}
}

func (s *ExplanationService) Enabled() bool {
	return s != nil && s.enabled
}

// Explain never fails: API errors fall back to the built-in summary.
func (s *ExplanationService) Explain(
	ctx context.Context,
	input domain.CalculationInput,
	result domain.CalculationResult,
) string {
	if !s.Enabled() {
		return s.fallback(input, result)
	}

	prompt := fmt.Sprintf(`Summarise this compound interest calculation for the user.

- Principal: %s
- Annual rate: %.2f%%
- Duration: %g years
- Compounded %s (%g times per year)
- Total amount: %s
- Interest earned: %s

Mention how much of the final amount is interest and how the compounding frequency affects it.`,
		s.formatter.Money(input.Principal), input.AnnualRatePercent, input.Years,
		FrequencyLabel(input.CompoundingFrequency), input.CompoundingFrequency,
		s.formatter.Money(result.TotalAmount), s.formatter.Money(result.InterestEarned))

	text, err := s.callLLM(ctx, prompt)
	if err != nil {
		log.Printf("Warning: explanation request failed: %v", err)
		return s.fallback(input, result)
	}
	return text
}

func (s *ExplanationService) callLLM(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, explanationTimeout)
	defer cancel()

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: explanationMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: explanationSystem},
		},
		Messages: []anthropic.MessageParam{
			{
				Role: "user",
				Content: []anthropic.ContentBlockParamUnion{
					{OfText: &anthropic.TextBlockParam{Text: prompt}},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("empty response from model")
	}
	return strings.TrimSpace(b.String()), nil
}

func (s *ExplanationService) fallback(
	input domain.CalculationInput,
	result domain.CalculationResult,
) string {
	share := 0.0
	if result.TotalAmount > 0 {
		share = result.InterestEarned / result.TotalAmount * 100
	}
	return fmt.Sprintf("Investing %s at %.2f%% a year, compounded %s for %g years, grows to %s. %s of that (%.1f%%) is interest earned on interest and principal.",
		s.formatter.Money(input.Principal), input.AnnualRatePercent,
		FrequencyLabel(input.CompoundingFrequency), input.Years,
		s.formatter.Money(result.TotalAmount), s.formatter.Money(result.InterestEarned), share)
}

// FrequencyLabel names the common compounding frequencies.
func FrequencyLabel(frequency float64) string {
	switch frequency {
	case 1:
		return "annually"
	case 2:
		return "semi-annually"
	case 4:
		return "quarterly"
	case 12:
		return "monthly"
	case 52:
		return "weekly"
	case 365:
		return "daily"
	default:
		return fmt.Sprintf("%g times a year", frequency)
	}
}
