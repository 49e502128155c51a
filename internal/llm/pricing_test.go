package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model  string
		input  float64
		output float64
	}{
		{"gemini-2.0-flash", 0.1, 0.4},
		{"gemini-flash", 0.1, 0.4},
		{"claude-haiku", 1, 5},
		{"gpt-4o-mini", 0.15, 0.6},
		{"google/gemini-2.0-flash-exp", 0, 0},
		{"anthropic/claude-sonnet-4.5", 3, 15},
		{"openai/gpt-4o-mini:free", 0.15, 0.6},
		{" GPT-4o ", 2.5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			c := LookupCost(tt.model)
			require.NotNil(t, c)
			assert.Equal(t, tt.input, c.InputPerMTok)
			assert.Equal(t, tt.output, c.OutputPerMTok)
		})
	}
}

func TestLookupCost_Unknown(t *testing.T) {
	assert.Nil(t, LookupCost("mystery-model"))
	assert.Nil(t, LookupCost(""))
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.1, OutputPerMTok: 0.4}
	assert.InDelta(t, 0.0009, c.Cost(3000, 1500), 1e-12)
}
