// Package grading scores submitted answers against an attempt's questions.
// It is pure: no I/O and no generation calls.
package grading

import (
	"math"

	"github.com/abhisek/skilleval/internal/store"
)

// MaxScore is the number of questions in a full assessment.
const MaxScore = 30

// Band is an ordinal classification of a percentage score.
type Band string

const (
	BandExcellent        Band = "EXCELLENT"
	BandGood             Band = "GOOD"
	BandAverage          Band = "AVERAGE"
	BandNeedsImprovement Band = "NEEDS_IMPROVEMENT"
)

// Bands returns all bands from best to worst.
func Bands() []Band {
	return []Band{BandExcellent, BandGood, BandAverage, BandNeedsImprovement}
}

// BandFor maps a percentage to its band. Lower bounds are inclusive.
func BandFor(percentage int) Band {
	switch {
	case percentage >= 90:
		return BandExcellent
	case percentage >= 75:
		return BandGood
	case percentage >= 60:
		return BandAverage
	default:
		return BandNeedsImprovement
	}
}

// Percentage returns round(total/MaxScore*100).
func Percentage(total int) int {
	return int(math.Round(float64(total) * 100 / MaxScore))
}

// Submission is one submitted answer.
type Submission struct {
	QuestionID int
	UserAnswer string
	TimeSpent  *int
}

// Result is the outcome of grading one submission set.
type Result struct {
	EasyScore   int
	MediumScore int
	HardScore   int
	TotalScore  int
	Percentage  int
	Band        Band
	WeakAreas   []string

	// Answers holds one record per graded submission, in submission order.
	Answers []store.Answer
}

// Grade scores subs against questions. Submissions for unknown question
// IDs, and repeats of an already graded ID, are ignored. Correctness is
// exact string equality with the correct option.
func Grade(questions []store.Question, subs []Submission) Result {
	byID := make(map[int]*store.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	var r Result
	seen := make(map[int]bool, len(subs))
	weak := make(map[string]bool)

	for _, s := range subs {
		q, ok := byID[s.QuestionID]
		if !ok || seen[s.QuestionID] {
			continue
		}
		seen[s.QuestionID] = true

		correct := s.UserAnswer == q.CorrectAnswer
		if correct {
			switch q.Difficulty {
			case store.DifficultyEasy:
				r.EasyScore++
			case store.DifficultyMedium:
				r.MediumScore++
			case store.DifficultyHard:
				r.HardScore++
			}
		} else if !weak[q.ConceptTag] {
			weak[q.ConceptTag] = true
			r.WeakAreas = append(r.WeakAreas, q.ConceptTag)
		}

		r.Answers = append(r.Answers, store.Answer{
			QuestionID: q.ID,
			UserAnswer: s.UserAnswer,
			IsCorrect:  correct,
			Difficulty: q.Difficulty,
			ConceptTag: q.ConceptTag,
			TimeSpent:  s.TimeSpent,
		})
	}

	r.TotalScore = r.EasyScore + r.MediumScore + r.HardScore
	r.Percentage = Percentage(r.TotalScore)
	r.Band = BandFor(r.Percentage)
	if r.WeakAreas == nil {
		r.WeakAreas = []string{}
	}
	return r
}

// Incorrect is an incorrectly answered question with its context.
type Incorrect struct {
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
	ConceptTag    string
	Difficulty    store.Difficulty
}

// IncorrectAnswers joins incorrect answers to their questions, in question
// order.
func IncorrectAnswers(questions []store.Question, answers []store.Answer) []Incorrect {
	byQuestion := make(map[int]store.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	var out []Incorrect
	for _, q := range questions {
		a, ok := byQuestion[q.ID]
		if !ok || a.IsCorrect {
			continue
		}
		out = append(out, Incorrect{
			Question:      q.Text,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			ConceptTag:    q.ConceptTag,
			Difficulty:    q.Difficulty,
		})
	}
	return out
}
