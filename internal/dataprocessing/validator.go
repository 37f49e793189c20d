package dataprocessing

import (
	"math"
	"strconv"
	"strings"

	"markscli/pkg/contracts/domain"
)

// Default mark bounds, inclusive on both ends.
const (
	DefaultMinMark = 0
	DefaultMaxMark = 100
)

// MarkValidator validates a single marks field against numeric-range rules.
// The zero value is not useful; use NewMarkValidator for the standard [0,100]
// interval or construct with explicit bounds.
type MarkValidator struct {
	Min float64
	Max float64
}

// NewMarkValidator returns a validator for the standard [0,100] interval.
func NewMarkValidator() MarkValidator {
	return MarkValidator{Min: DefaultMinMark, Max: DefaultMaxMark}
}

// Validate checks the raw marks text and returns a tagged outcome.
// The text is trimmed first; empty means missing, unparseable decimals are
// not numeric, and parsed values outside the closed [Min,Max] interval are
// out of range. Pure function, no side effects.
func (v MarkValidator) Validate(text string) domain.MarkOutcome {
	s := strings.TrimSpace(text)
	if s == "" {
		return domain.MarkOutcome{Kind: domain.MarkMissing}
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.MarkOutcome{Kind: domain.MarkNotNumeric}
	}
	// ParseFloat accepts "NaN", which compares false against both bounds.
	if math.IsNaN(value) || value < v.Min || value > v.Max {
		return domain.MarkOutcome{Kind: domain.MarkOutOfRange, Value: value}
	}
	return domain.MarkOutcome{Kind: domain.MarkValid, Value: value}
}

// ValidateMark validates a marks field against the standard [0,100] interval.
func ValidateMark(text string) domain.MarkOutcome {
	return NewMarkValidator().Validate(text)
}
