package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/skilleval/internal/assessment"
	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/lock"
)

// APIError is the body of every error response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps APIError.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: message, Code: code}})
}

// respondErr maps a domain error to its status and code. Internal errors
// are logged by the request logger and never echoed to the client.
func respondErr(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = "internal server error"
	case http.StatusBadGateway:
		msg = "could not generate the assessment, please try again"
	}
	_ = c.Error(err)
	respondError(c, status, code, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, assessment.ErrNotFound), errors.Is(err, catalog.ErrConceptNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, assessment.ErrAlreadyCompleted):
		return http.StatusConflict, "already_completed"
	case errors.Is(err, assessment.ErrNotCompleted):
		return http.StatusConflict, "not_completed"
	case errors.Is(err, lock.ErrNotAcquired):
		return http.StatusConflict, "start_in_progress"
	case errors.Is(err, assessment.ErrInvalidAnswers):
		return http.StatusBadRequest, "invalid_answers"
	case errors.Is(err, assessment.ErrInvalidConcept):
		return http.StatusBadRequest, "invalid_concept"
	case errors.Is(err, assessment.ErrTestGenerationFailed):
		return http.StatusBadGateway, "generation_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
