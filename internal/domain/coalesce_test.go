package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		rec      RawRecord
		fields   []string
		expected string
		ok       bool
	}{
		{
			"first populated wins",
			RawRecord{"min_fee": "100", "rate": "250"},
			[]string{"min_fee", "rate", "max_fee"},
			"100", true,
		},
		{
			"blank first falls through",
			RawRecord{"min_fee": "   ", "rate": "250"},
			[]string{"min_fee", "rate", "max_fee"},
			"250", true,
		},
		{
			"absent first falls through",
			RawRecord{"max_fee": "900"},
			[]string{"min_fee", "rate", "max_fee"},
			"900", true,
		},
		{
			"value is trimmed",
			RawRecord{"rate": "  0.15  "},
			[]string{"min_fee", "rate", "max_fee"},
			"0.15", true,
		},
		{
			"all blank or absent",
			RawRecord{"min_fee": "", "rate": "  "},
			[]string{"min_fee", "rate", "max_fee"},
			"", false,
		},
		{
			"no candidates",
			RawRecord{"rate": "5"},
			nil,
			"", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstNonBlank(tt.rec, tt.fields...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
