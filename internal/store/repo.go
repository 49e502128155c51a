package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyCompleted is returned by Complete when the attempt was
	// already marked completed, possibly by a concurrent writer.
	ErrAlreadyCompleted = errors.New("store: attempt already completed")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	Purpose    string    // exact purpose match, empty for all
	FailedOnly bool      // only unsuccessful calls
	From       time.Time // timestamp >= From
	To         time.Time // timestamp <= To
}

// Difficulty is a question tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Difficulties returns the tiers in presentation order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Concept is an assessable subject.
type Concept struct {
	ID          int
	Key         string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Question is one question of an attempt. ID is zero until persisted.
type Question struct {
	ID            int
	Position      int
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    Difficulty
	ConceptTag    string
	Explanation   string
}

// Answer is a graded answer to one question of an attempt.
type Answer struct {
	ID         int
	QuestionID int
	UserAnswer string
	IsCorrect  bool
	Difficulty Difficulty
	ConceptTag string
	TimeSpent  *int
	CreatedAt  time.Time
}

// Attempt is one user's assessment of one concept. Questions and Answers
// are populated only by the queries that say so.
type Attempt struct {
	ID               uuid.UUID
	UserID           string
	ConceptID        int
	ConceptKey       string
	Completed        bool
	EasyScore        int
	MediumScore      int
	HardScore        int
	TotalScore       int
	Percentage       int
	Band             string
	WeakAreas        []string
	TimeLimitMinutes int
	CreatedAt        time.Time
	CompletedAt      *time.Time

	Questions []Question
	Answers   []Answer
}

// NewAttempt describes an attempt to create together with its questions.
type NewAttempt struct {
	UserID           string
	ConceptID        int
	TimeLimitMinutes int
	Questions        []Question
}

// Completion is the single mutation applied to an attempt at submit.
type Completion struct {
	EasyScore   int
	MediumScore int
	HardScore   int
	TotalScore  int
	Percentage  int
	Band        string
	WeakAreas   []string
	Answers     []Answer
	CompletedAt time.Time
}

// ConceptStat aggregates attempts for one concept.
type ConceptStat struct {
	ConceptID      int
	ConceptKey     string
	Attempts       int
	Completed      int
	MeanPercentage float64
}

// ConceptRepo manages the concept catalog.
type ConceptRepo interface {
	// Upsert creates the concept or updates description and active flag
	// in place.
	Upsert(ctx context.Context, key, description string, active bool) (*Concept, error)

	// Get returns the concept with key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Concept, error)

	// List returns concepts ordered by key. Inactive ones are included
	// only when includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]Concept, error)
}

// AttemptRepo manages attempts and their questions and answers.
type AttemptRepo interface {
	// ReplaceActive deletes any unfinished attempt for the (user, concept)
	// pair and creates a new one with its questions, in one transaction.
	ReplaceActive(ctx context.Context, in NewAttempt) (*Attempt, error)

	// Get returns the attempt with its concept key, questions (in position
	// order) and answers, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Attempt, error)

	// ActiveForUser returns the most recently started unfinished attempt of
	// the user across concepts, with questions, or ErrNotFound.
	ActiveForUser(ctx context.Context, userID string) (*Attempt, error)

	// ListCompleted returns the user's completed attempts, newest first,
	// without questions or answers.
	ListCompleted(ctx context.Context, userID string) ([]Attempt, error)

	// Complete applies c to an unfinished attempt and writes its answers
	// atomically. Returns ErrAlreadyCompleted or ErrNotFound.
	Complete(ctx context.Context, id uuid.UUID, c Completion) error
}

// StatsRepo provides read-only aggregates across all users.
type StatsRepo interface {
	// Counts returns the number of attempts and completed attempts.
	Counts(ctx context.Context) (total, completed int, err error)

	// BandCounts returns completed attempts per band.
	BandCounts(ctx context.Context) (map[string]int, error)

	// ConceptStats returns per-concept aggregates in no particular order.
	ConceptStats(ctx context.Context) ([]ConceptStat, error)

	// RecentCompleted returns the latest completed attempts.
	RecentCompleted(ctx context.Context, limit int) ([]Attempt, error)

	// TopCompleted returns the highest-scoring completed attempts, most
	// recent first among equal percentages.
	TopCompleted(ctx context.Context, limit int) ([]Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates calls for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
