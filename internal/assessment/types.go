package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/recommend"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/store"
)

// QuestionView is a question as delivered to the learner, without its
// answer or explanation.
type QuestionView struct {
	ID         int              `json:"id"`
	Position   int              `json:"position"`
	Question   string           `json:"question"`
	Options    []string         `json:"options"`
	Difficulty store.Difficulty `json:"difficulty"`
	ConceptTag string           `json:"conceptTag"`
}

// AttemptView is an active attempt as delivered to the learner.
type AttemptView struct {
	AttemptID        uuid.UUID      `json:"attemptId"`
	Concept          string         `json:"concept"`
	Questions        []QuestionView `json:"questions"`
	TimeLimitMinutes int            `json:"timeLimitMinutes"`
	StartedAt        time.Time      `json:"startedAt"`
}

// Scores are the graded outcome of an attempt.
type Scores struct {
	EasyScore   int          `json:"easyScore"`
	MediumScore int          `json:"mediumScore"`
	HardScore   int          `json:"hardScore"`
	TotalScore  int          `json:"totalScore"`
	Percentage  int          `json:"percentage"`
	Band        grading.Band `json:"band"`
	Message     string       `json:"message"`
	WeakAreas   []string     `json:"weakAreas"`
}

// SubmitResult is returned by Submit.
type SubmitResult struct {
	AttemptID uuid.UUID `json:"attemptId"`
	Concept   string    `json:"concept"`
	Scores
	Resources recommend.Resources `json:"resources"`
}

// Result is the full analysis of a completed attempt.
type Result struct {
	AttemptID   uuid.UUID  `json:"attemptId"`
	Concept     string     `json:"concept"`
	CompletedAt *time.Time `json:"completedAt"`
	Scores
	Analysis             grading.Analysis                `json:"analysis"`
	Review               []reporting.ReviewItem          `json:"review"`
	Resources            recommend.Resources             `json:"resources"`
	StudyRecommendations *recommend.StudyRecommendations `json:"studyRecommendations"`
}

// Summary is one completed attempt in a user's history.
type Summary struct {
	AttemptID   uuid.UUID  `json:"attemptId"`
	Concept     string     `json:"concept"`
	CompletedAt *time.Time `json:"completedAt"`
	Scores
}

// Message returns the learner-facing message for band.
func Message(band grading.Band, concept string) string {
	switch band {
	case grading.BandExcellent:
		return fmt.Sprintf("Outstanding work! You have a strong command of %s.", concept)
	case grading.BandGood:
		return fmt.Sprintf("Good job! You have a solid understanding of %s with a few gaps.", concept)
	case grading.BandAverage:
		return fmt.Sprintf("Decent effort. Review the weak areas to strengthen your %s skills.", concept)
	default:
		return fmt.Sprintf("Keep practicing. Focus on the fundamentals of %s and the weak areas below.", concept)
	}
}

func viewOf(a *store.Attempt) *AttemptView {
	qs := make([]QuestionView, len(a.Questions))
	for i, q := range a.Questions {
		qs[i] = QuestionView{
			ID:         q.ID,
			Position:   q.Position,
			Question:   q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			ConceptTag: q.ConceptTag,
		}
	}
	return &AttemptView{
		AttemptID:        a.ID,
		Concept:          a.ConceptKey,
		Questions:        qs,
		TimeLimitMinutes: a.TimeLimitMinutes,
		StartedAt:        a.CreatedAt,
	}
}

func scoresOf(a *store.Attempt) Scores {
	weak := a.WeakAreas
	if weak == nil {
		weak = []string{}
	}
	band := grading.Band(a.Band)
	return Scores{
		EasyScore:   a.EasyScore,
		MediumScore: a.MediumScore,
		HardScore:   a.HardScore,
		TotalScore:  a.TotalScore,
		Percentage:  a.Percentage,
		Band:        band,
		Message:     Message(band, a.ConceptKey),
		WeakAreas:   weak,
	}
}
