package questiongen

import "github.com/abhisek/skilleval/internal/llm"

// BatchSchema defines the JSON schema of one tier batch.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A list of multiple-choice assessment questions of one difficulty tier",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question text shown to the learner",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Four answer options, exactly one correct",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"description": "The correct option, copied verbatim from options",
				},
				"conceptTag": map[string]any{
					"type":        "string",
					"description": "The subject, or a finer-grained topic within it",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is correct",
				},
			},
			"required": []any{"question", "options", "correctAnswer"},
		},
	},
}
