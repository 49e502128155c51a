package recommend

import (
	"fmt"
	"strings"
)

// maxIncorrectInPrompt bounds the prompt size for very poor attempts.
const maxIncorrectInPrompt = 15

const resourcesSystemPrompt = `You are a learning coach on a programming education platform. You recommend concrete learning resources after a skill assessment.

Rules:
- Return ONLY a JSON object with "resources", "studyPlan" and "practiceAreas". No prose, no markdown fences.
- Recommend 6 to 8 resources, ordered by priority, each targeting one weakness.
- Prefer well-known, stable resources (official documentation, reputable courses and books). Use real URLs.
- "studyPlan" has "immediate" (this week), "shortTerm" (this month) and "longTerm" (next three months) guidance.
- "practiceAreas" lists the topics to practice, most urgent first.`

const studySystemPrompt = `You are a learning coach on a programming education platform. You analyze a learner's assessment mistakes and propose a study strategy.

Rules:
- Return ONLY a JSON object with "priorityAreas", "studyStrategy", "practiceRecommendations" and "weaknessBreakdown". No prose, no markdown fences.
- Each priority area has an urgency of "high", "medium" or "low" and a one-sentence reason.
- Classify each weakness as conceptual (misunderstood ideas), practical (application errors) or foundational (missing prerequisites).`

// buildUserMessage describes the attempt outcome for either generator.
func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", in.ConceptKey)
	fmt.Fprintf(&b, "Score: %d%% (%s)\n", in.Percentage, in.Band)

	b.WriteString("Weak areas: ")
	if len(in.WeakAreas) == 0 {
		b.WriteString("None")
	} else {
		b.WriteString(strings.Join(in.WeakAreas, ", "))
	}
	b.WriteString("\n\nIncorrectly answered questions:\n")

	if len(in.Incorrect) == 0 {
		b.WriteString("None\n")
	}
	for i, q := range in.Incorrect {
		if i == maxIncorrectInPrompt {
			fmt.Fprintf(&b, "... and %d more\n", len(in.Incorrect)-maxIncorrectInPrompt)
			break
		}
		fmt.Fprintf(&b, "%d. [%s, %s] %s\n", i+1, q.Difficulty, q.ConceptTag, q.Question)
		fmt.Fprintf(&b, "   Learner answered: %s\n", q.UserAnswer)
		fmt.Fprintf(&b, "   Correct answer: %s\n", q.CorrectAnswer)
		if q.Explanation != "" {
			fmt.Fprintf(&b, "   Explanation: %s\n", q.Explanation)
		}
	}
	return b.String()
}
