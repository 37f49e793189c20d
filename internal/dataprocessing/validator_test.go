package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"markscli/pkg/contracts/domain"
)

func TestMarkValidator_Validate(t *testing.T) {
	validator := NewMarkValidator()

	tests := []struct {
		name      string
		text      string
		wantKind  domain.MarkOutcomeKind
		wantValue float64
	}{
		{
			name:      "integer mark",
			text:      "85",
			wantKind:  domain.MarkValid,
			wantValue: 85,
		},
		{
			name:      "fractional mark",
			text:      "72.5",
			wantKind:  domain.MarkValid,
			wantValue: 72.5,
		},
		{
			name:      "surrounding whitespace trimmed",
			text:      "  90 ",
			wantKind:  domain.MarkValid,
			wantValue: 90,
		},
		{
			name:      "lower bound inclusive",
			text:      "0",
			wantKind:  domain.MarkValid,
			wantValue: 0,
		},
		{
			name:      "upper bound inclusive",
			text:      "100",
			wantKind:  domain.MarkValid,
			wantValue: 100,
		},
		{
			name:     "empty is missing",
			text:     "",
			wantKind: domain.MarkMissing,
		},
		{
			name:     "whitespace only is missing",
			text:     "   ",
			wantKind: domain.MarkMissing,
		},
		{
			name:     "non numeric",
			text:     "ninety",
			wantKind: domain.MarkNotNumeric,
		},
		{
			name:     "mixed alphanumeric",
			text:     "85a",
			wantKind: domain.MarkNotNumeric,
		},
		{
			name:      "above range",
			text:      "150",
			wantKind:  domain.MarkOutOfRange,
			wantValue: 150,
		},
		{
			name:      "just above range",
			text:      "100.01",
			wantKind:  domain.MarkOutOfRange,
			wantValue: 100.01,
		},
		{
			name:      "negative",
			text:      "-1",
			wantKind:  domain.MarkOutOfRange,
			wantValue: -1,
		},
		{
			name:     "NaN parses but is out of range",
			text:     "NaN",
			wantKind: domain.MarkOutOfRange,
		},
		{
			name:     "lowercase nan",
			text:     "nan",
			wantKind: domain.MarkOutOfRange,
		},
		{
			name:     "positive infinity",
			text:     "Inf",
			wantKind: domain.MarkOutOfRange,
		},
		{
			name:     "negative infinity",
			text:     "-Inf",
			wantKind: domain.MarkOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := validator.Validate(tt.text)

			assert.Equal(t, tt.wantKind, outcome.Kind)
			if tt.wantKind == domain.MarkValid {
				assert.Equal(t, tt.wantValue, outcome.Value)
				assert.True(t, outcome.IsValid())
				assert.Equal(t, domain.ReasonNone, outcome.Reason())
			} else {
				assert.False(t, outcome.IsValid())
			}
		})
	}
}

func TestMarkOutcome_Reason(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "missing", text: "", want: "Missing Marks"},
		{name: "not numeric", text: "abc", want: "Invalid Marks"},
		{name: "out of range", text: "101", want: "Marks Out of Range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ValidateMark(tt.text)
			assert.Equal(t, tt.want, outcome.Reason().String())
		})
	}
}

func TestMarkValidator_CustomBounds(t *testing.T) {
	validator := MarkValidator{Min: 10, Max: 20}

	assert.Equal(t, domain.MarkValid, validator.Validate("15").Kind)
	assert.Equal(t, domain.MarkOutOfRange, validator.Validate("5").Kind)
	assert.Equal(t, domain.MarkOutOfRange, validator.Validate("25").Kind)
}
