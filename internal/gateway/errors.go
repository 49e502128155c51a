package gateway

import "errors"

var (
	// ErrGenerationUnavailable means the backend could not be reached,
	// timed out, or returned an empty reply.
	ErrGenerationUnavailable = errors.New("generation unavailable")

	// ErrGenerationMalformed means the backend replied but the reply could
	// not be recovered into the expected structure.
	ErrGenerationMalformed = errors.New("generation malformed")
)
