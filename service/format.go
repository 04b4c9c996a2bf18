package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"compound-interest/domain"
)

// Formatter renders amounts as currency text with exactly two fractional
// digits and comma thousands grouping.
type Formatter struct {
	prefix string
}

func NewFormatter(prefix string) Formatter {
	if prefix == "" {
		prefix = DefaultCurrencyPrefix
	}
	return Formatter{prefix: prefix}
}

// FormatMoney formats v with the default NPR prefix.
func FormatMoney(v float64) string {
	return NewFormatter(DefaultCurrencyPrefix).Money(v)
}

func (f Formatter) Money(v float64) string {
	switch {
	case math.IsNaN(v):
		return f.prefix + "NaN"
	case math.IsInf(v, 1):
		return f.prefix + "∞"
	case math.IsInf(v, -1):
		return f.prefix + "-∞"
	}

	fixed := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	return f.prefix + sign + groupThousands(intPart) + "." + frac
}

func (f Formatter) Result(result domain.CalculationResult) domain.DisplayResult {
	return domain.DisplayResult{
		TotalAmount:    f.Money(result.TotalAmount),
		InterestEarned: f.Money(result.InterestEarned),
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
