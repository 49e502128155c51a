package questiongen

import "fmt"

// Validator checks a generated question.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages, e.g.
	// "structural" or "answer-in-options".
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Index     int    // Position of the question within its batch
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question %d: %s", e.Validator, e.Index, e.Message)
}
