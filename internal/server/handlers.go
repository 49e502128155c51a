package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/skilleval/internal/assessment"
	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/store"
)

// Assessments is the attempt lifecycle used by the handlers.
type Assessments interface {
	Start(ctx context.Context, userID, conceptKey string) (*assessment.AttemptView, error)
	Submit(ctx context.Context, attemptID uuid.UUID, userID string, answers []grading.Submission) (*assessment.SubmitResult, error)
	GetActive(ctx context.Context, userID string) (*assessment.AttemptView, error)
	GetResult(ctx context.Context, attemptID uuid.UUID, userID string) (*assessment.Result, error)
	ListCompleted(ctx context.Context, userID string) ([]assessment.Summary, error)
}

// Concepts is the catalog used by the handlers.
type Concepts interface {
	ListActive(ctx context.Context) ([]catalog.Entry, error)
	Register(ctx context.Context, key, description string) (*store.Concept, error)
}

// Reports provides operator aggregates.
type Reports interface {
	Stats(ctx context.Context) (*reporting.Stats, error)
}

// Pinger reports backing store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	assessments Assessments
	concepts    Concepts
	reports     Reports
	db          Pinger
}

type startRequest struct {
	Concept string `json:"concept" binding:"required"`
}

type answerRequest struct {
	QuestionID int    `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
	TimeSpent  *int   `json:"timeSpent"`
}

type submitRequest struct {
	Answers []answerRequest `json:"answers"`
}

type registerRequest struct {
	Description string `json:"description" binding:"required"`
}

func (h *handlers) health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			respondError(c, http.StatusServiceUnavailable, "unavailable", "database unreachable")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) listConcepts(c *gin.Context) {
	entries, err := h.concepts.ListActive(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"concepts": entries})
}

func (h *handlers) registerConcept(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	concept, err := h.concepts.Register(c.Request.Context(), c.Param("key"), req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.Entry{
		Key:           concept.Key,
		Description:   concept.Description,
		QuestionCount: catalog.QuestionsPerAssessment,
	})
}

func (h *handlers) start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	view, err := h.assessments.Start(c.Request.Context(), userID(c), req.Concept)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *handlers) active(c *gin.Context) {
	view, err := h.assessments.GetActive(c.Request.Context(), userID(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"active": view})
	case isNotFound(err):
		c.JSON(http.StatusOK, gin.H{"active": nil})
	default:
		respondErr(c, err)
	}
}

func (h *handlers) submit(c *gin.Context) {
	id, ok := attemptID(c)
	if !ok {
		return
	}
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	subs := make([]grading.Submission, len(req.Answers))
	for i, a := range req.Answers {
		subs[i] = grading.Submission{QuestionID: a.QuestionID, UserAnswer: a.UserAnswer, TimeSpent: a.TimeSpent}
	}

	res, err := h.assessments.Submit(c.Request.Context(), id, userID(c), subs)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) result(c *gin.Context) {
	id, ok := attemptID(c)
	if !ok {
		return
	}
	res, err := h.assessments.GetResult(c.Request.Context(), id, userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handlers) list(c *gin.Context) {
	rows, err := h.assessments.ListCompleted(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows})
}

func (h *handlers) stats(c *gin.Context) {
	st, err := h.reports.Stats(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// attemptID parses the :id parameter. Malformed ids cannot name an
// attempt, so they are reported as not found.
func attemptID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "attempt not found")
		return uuid.Nil, false
	}
	return id, true
}

func isNotFound(err error) bool {
	status, _ := classify(err)
	return status == http.StatusNotFound
}
