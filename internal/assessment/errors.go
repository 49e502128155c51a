package assessment

import (
	"errors"

	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/questiongen"
)

var (
	// ErrNotFound is returned for attempts or concepts that do not exist
	// or do not belong to the caller.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyCompleted is returned when submitting a completed attempt.
	ErrAlreadyCompleted = errors.New("attempt already completed")

	// ErrNotCompleted is returned when reading the result of an attempt
	// that is still in progress.
	ErrNotCompleted = errors.New("attempt not completed")

	// ErrInvalidAnswers is returned for a malformed answer array.
	ErrInvalidAnswers = errors.New("invalid answers")

	// ErrInvalidConcept is returned for malformed concept keys.
	ErrInvalidConcept = catalog.ErrInvalidConcept

	// ErrTestGenerationFailed is returned when a start could not produce a
	// full question set. Nothing is persisted.
	ErrTestGenerationFailed = questiongen.ErrTestGenerationFailed
)
