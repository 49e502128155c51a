// Package assessment owns the attempt lifecycle: start, submit, and the
// read paths over active and completed attempts.
//
// An attempt moves from ACTIVE to COMPLETED exactly once. Starting again
// for the same user and concept discards the unfinished attempt.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/lock"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/recommend"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/store"
)

// QuestionSetGenerator produces the full question set for a concept.
type QuestionSetGenerator interface {
	GenerateQuestionSet(ctx context.Context, conceptKey, description string) ([]store.Question, error)
}

// Recommender produces remediation guidance.
type Recommender interface {
	PersonalizedResources(ctx context.Context, in recommend.Input) recommend.Resources
	StudyRecommendations(ctx context.Context, in recommend.Input) *recommend.StudyRecommendations
}

// Config controls attempt behavior.
type Config struct {
	// TimeLimitMinutes is the suggested time budget returned on start.
	TimeLimitMinutes int
	// StartLockTTL bounds how long one start holds the per-pair guard.
	StartLockTTL time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{TimeLimitMinutes: 45, StartLockTTL: 3 * time.Minute}
}

// Deps are the collaborators of a Service.
type Deps struct {
	Catalog     *catalog.Catalog
	Attempts    store.AttemptRepo
	Generator   QuestionSetGenerator
	Recommender Recommender
	Locker      lock.Locker
	Logger      *logger.Logger
}

// Service implements the attempt lifecycle.
type Service struct {
	catalog     *catalog.Catalog
	attempts    store.AttemptRepo
	generator   QuestionSetGenerator
	recommender Recommender
	locker      lock.Locker
	config      Config
	log         *logger.Logger
	now         func() time.Time
}

// New creates a Service. A nil Locker uses an in-process lock.
func New(deps Deps, cfg Config) *Service {
	s := &Service{
		catalog:     deps.Catalog,
		attempts:    deps.Attempts,
		generator:   deps.Generator,
		recommender: deps.Recommender,
		locker:      deps.Locker,
		config:      cfg,
		log:         deps.Logger,
		now:         time.Now,
	}
	if s.locker == nil {
		s.locker = lock.NewLocal()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.config.TimeLimitMinutes <= 0 {
		s.config.TimeLimitMinutes = DefaultConfig().TimeLimitMinutes
	}
	if s.config.StartLockTTL <= 0 {
		s.config.StartLockTTL = DefaultConfig().StartLockTTL
	}
	return s
}

// Start generates a fresh attempt for the user and concept, replacing any
// unfinished one. A failed start leaves existing attempts untouched.
func (s *Service) Start(ctx context.Context, userID, conceptKey string) (*AttemptView, error) {
	key, err := catalog.NormalizeKey(conceptKey)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Acquire(ctx, "start:"+userID+":"+key, s.config.StartLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire start guard: %w", err)
	}
	defer release()

	concept, err := s.catalog.Ensure(ctx, key)
	if err != nil {
		if errors.Is(err, catalog.ErrConceptNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}

	log := s.log.With("user_id", userID, "concept", concept.Key)
	started := s.now()

	questions, err := s.generator.GenerateQuestionSet(ctx, concept.Key, concept.Description)
	if err != nil {
		log.Warn("question generation failed", "error", err)
		return nil, err
	}

	a, err := s.attempts.ReplaceActive(ctx, store.NewAttempt{
		UserID:           userID,
		ConceptID:        concept.ID,
		TimeLimitMinutes: s.config.TimeLimitMinutes,
		Questions:        questions,
	})
	if err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}
	a.ConceptKey = concept.Key

	log.Info("attempt started", "attempt_id", a.ID, "questions", len(a.Questions),
		"duration_ms", s.now().Sub(started).Milliseconds())
	return viewOf(a), nil
}

// Submit grades answers, builds resources and completes the attempt
// atomically. A failed submit leaves the attempt ACTIVE.
func (s *Service) Submit(ctx context.Context, attemptID uuid.UUID, userID string, answers []grading.Submission) (*SubmitResult, error) {
	a, err := s.owned(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if a.Completed {
		return nil, ErrAlreadyCompleted
	}
	if err := validateSubmissions(answers); err != nil {
		return nil, err
	}

	graded := grading.Grade(a.Questions, answers)
	if len(graded.Answers) == 0 {
		return nil, fmt.Errorf("%w: no answer references a question of this attempt", ErrInvalidAnswers)
	}

	resources := s.recommender.PersonalizedResources(ctx, recommend.Input{
		ConceptKey: a.ConceptKey,
		WeakAreas:  graded.WeakAreas,
		Band:       graded.Band,
		Percentage: graded.Percentage,
		Incorrect:  grading.IncorrectAnswers(a.Questions, graded.Answers),
	})

	err = s.attempts.Complete(ctx, a.ID, store.Completion{
		EasyScore:   graded.EasyScore,
		MediumScore: graded.MediumScore,
		HardScore:   graded.HardScore,
		TotalScore:  graded.TotalScore,
		Percentage:  graded.Percentage,
		Band:        string(graded.Band),
		WeakAreas:   graded.WeakAreas,
		Answers:     graded.Answers,
		CompletedAt: s.now(),
	})
	switch {
	case errors.Is(err, store.ErrAlreadyCompleted):
		return nil, ErrAlreadyCompleted
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("complete attempt: %w", err)
	}

	s.log.Info("attempt completed", "attempt_id", a.ID, "user_id", userID,
		"concept", a.ConceptKey, "percentage", graded.Percentage, "band", graded.Band)

	return &SubmitResult{
		AttemptID: a.ID,
		Concept:   a.ConceptKey,
		Scores: Scores{
			EasyScore:   graded.EasyScore,
			MediumScore: graded.MediumScore,
			HardScore:   graded.HardScore,
			TotalScore:  graded.TotalScore,
			Percentage:  graded.Percentage,
			Band:        graded.Band,
			Message:     Message(graded.Band, a.ConceptKey),
			WeakAreas:   graded.WeakAreas,
		},
		Resources: resources,
	}, nil
}

// GetActive returns the user's unfinished attempt, or ErrNotFound.
func (s *Service) GetActive(ctx context.Context, userID string) (*AttemptView, error) {
	a, err := s.attempts.ActiveForUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query active attempt: %w", err)
	}
	return viewOf(a), nil
}

// GetResult rebuilds the analysis of a completed attempt from its stored
// answers and regenerates both recommendation payloads.
func (s *Service) GetResult(ctx context.Context, attemptID uuid.UUID, userID string) (*Result, error) {
	a, err := s.owned(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if !a.Completed {
		return nil, ErrNotCompleted
	}

	in := recommend.Input{
		ConceptKey: a.ConceptKey,
		WeakAreas:  a.WeakAreas,
		Band:       grading.Band(a.Band),
		Percentage: a.Percentage,
		Incorrect:  grading.IncorrectAnswers(a.Questions, a.Answers),
	}

	var (
		resources recommend.Resources
		study     *recommend.StudyRecommendations
	)
	var g errgroup.Group
	g.Go(func() error {
		resources = s.recommender.PersonalizedResources(ctx, in)
		return nil
	})
	g.Go(func() error {
		study = s.recommender.StudyRecommendations(ctx, in)
		return nil
	})
	_ = g.Wait()

	return &Result{
		AttemptID:            a.ID,
		Concept:              a.ConceptKey,
		CompletedAt:          a.CompletedAt,
		Scores:               scoresOf(a),
		Analysis:             grading.Analyze(a.Answers),
		Review:               reporting.Review(a.Questions, a.Answers),
		Resources:            resources,
		StudyRecommendations: study,
	}, nil
}

// ListCompleted returns the user's completed attempts, newest first.
func (s *Service) ListCompleted(ctx context.Context, userID string) ([]Summary, error) {
	rows, err := s.attempts.ListCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list completed attempts: %w", err)
	}
	out := make([]Summary, len(rows))
	for i := range rows {
		out[i] = Summary{
			AttemptID:   rows[i].ID,
			Concept:     rows[i].ConceptKey,
			CompletedAt: rows[i].CompletedAt,
			Scores:      scoresOf(&rows[i]),
		}
	}
	return out, nil
}

// owned loads an attempt and hides attempts of other users.
func (s *Service) owned(ctx context.Context, attemptID uuid.UUID, userID string) (*store.Attempt, error) {
	a, err := s.attempts.Get(ctx, attemptID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if a.UserID != userID {
		return nil, ErrNotFound
	}
	return a, nil
}

// validateSubmissions rejects malformed answer arrays before any state
// change.
func validateSubmissions(answers []grading.Submission) error {
	if len(answers) == 0 {
		return fmt.Errorf("%w: no answers submitted", ErrInvalidAnswers)
	}
	seen := make(map[int]bool, len(answers))
	for i, a := range answers {
		if a.QuestionID <= 0 {
			return fmt.Errorf("%w: answer %d has no question id", ErrInvalidAnswers, i)
		}
		if seen[a.QuestionID] {
			return fmt.Errorf("%w: question %d answered twice", ErrInvalidAnswers, a.QuestionID)
		}
		seen[a.QuestionID] = true
		if a.TimeSpent != nil && *a.TimeSpent < 0 {
			return fmt.Errorf("%w: answer %d has negative time spent", ErrInvalidAnswers, i)
		}
	}
	return nil
}
