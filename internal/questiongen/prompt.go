package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/skilleval/internal/store"
)

const systemPrompt = `You write multiple-choice questions for a skill assessment on a programming and computer science education platform.

Rules:
- Return ONLY a JSON array of question objects. No prose, no markdown fences.
- Each object has "question", "options", "correctAnswer", "conceptTag" and "explanation".
- Provide exactly 4 options per question. Exactly one option is correct.
- "correctAnswer" must be copied character for character from "options".
- "conceptTag" is the subject key, or a narrower topic within it written in lowercase (for example "closures" for javascript).
- Distractors should reflect common misconceptions, not random values.
- Questions must be self-contained and unambiguous. Do not repeat a question within the batch.
- The explanation is one or two sentences.`

var tierGuidance = map[store.Difficulty]string{
	store.DifficultyEasy:   "Recall of core definitions, syntax and basic behaviour.",
	store.DifficultyMedium: "Applying concepts: reading short code or scenarios and predicting results.",
	store.DifficultyHard:   "Edge cases, trade-offs, debugging and multi-step reasoning.",
}

// buildUserMessage constructs the user message for one tier batch.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.ConceptKey)
	if input.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Description)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Focus: %s\n", tierGuidance[input.Difficulty])
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)
	fmt.Fprintf(&b, "\nGenerate exactly %d %s questions about %s.", input.Count, input.Difficulty, input.ConceptKey)

	return b.String()
}
