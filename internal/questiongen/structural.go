package questiongen

import "strings"

const (
	maxQuestionLen    = 1000
	maxOptionLen      = 300
	maxExplanationLen = 2000
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return v.fail("question text is empty")
	}
	if len(q.Text) > maxQuestionLen {
		return v.fail("question text exceeds 1000 characters")
	}
	if len(q.Options) == 0 {
		return v.fail("options are empty")
	}
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return v.fail("an option is blank")
		}
		if len(o) > maxOptionLen {
			return v.fail("an option exceeds 300 characters")
		}
	}
	if q.CorrectAnswer == "" {
		return v.fail("correct answer is empty")
	}
	if len(q.Explanation) > maxExplanationLen {
		return v.fail("explanation exceeds 2000 characters")
	}
	if !q.Difficulty.Valid() {
		return v.fail("unknown difficulty " + string(q.Difficulty))
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// AnswerInOptionsValidator checks that the correct answer is, verbatim,
// one of the options. Grading compares strings exactly, so a near match is
// a failure.
type AnswerInOptionsValidator struct{}

func (v *AnswerInOptionsValidator) Name() string { return "answer-in-options" }

func (v *AnswerInOptionsValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	for _, o := range q.Options {
		if o == q.CorrectAnswer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   "correct answer " + quote(q.CorrectAnswer) + " is not among the options",
	}
}

func quote(s string) string {
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return `"` + s + `"`
}
