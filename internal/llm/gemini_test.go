package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestBuildGeminiSchema_QuestionBatch(t *testing.T) {
	def := map[string]any{
		"type":        "array",
		"description": "Questions for one difficulty tier",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"correctAnswer": map[string]any{"type": "string"},
				"conceptTag":    map[string]any{"type": "string"},
				"difficulty":    map[string]any{"type": "string", "enum": []any{"EASY", "MEDIUM", "HARD"}},
				"points":        map[string]any{"type": "integer"},
			},
			"required": []any{"question", "options", "correctAnswer", "conceptTag"},
		},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeArray, schema.Type)
	assert.Equal(t, "Questions for one difficulty tier", schema.Description)
	require.NotNil(t, schema.Items)

	item := schema.Items
	assert.Equal(t, genai.TypeObject, item.Type)
	assert.Len(t, item.Properties, 6)
	assert.Equal(t, genai.TypeArray, item.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, item.Properties["options"].Items.Type)
	assert.Equal(t, genai.TypeInteger, item.Properties["points"].Type)
	assert.Equal(t, []string{"EASY", "MEDIUM", "HARD"}, item.Properties["difficulty"].Enum)
	assert.ElementsMatch(t, []string{"question", "options", "correctAnswer", "conceptTag"}, item.Required)
}
