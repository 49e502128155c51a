package grading

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/store"
)

// attemptQuestions returns 30 questions with IDs 1..30; the correct
// answer is always "right". Tags rotate through the given list.
func attemptQuestions(tags ...string) []store.Question {
	if len(tags) == 0 {
		tags = []string{"golang"}
	}
	var qs []store.Question
	for i, d := range []store.Difficulty{store.DifficultyEasy, store.DifficultyMedium, store.DifficultyHard} {
		for j := 0; j < 10; j++ {
			pos := i*10 + j
			qs = append(qs, store.Question{
				ID:            pos + 1,
				Position:      pos,
				Text:          fmt.Sprintf("q%d", pos),
				Options:       []string{"right", "wrong"},
				CorrectAnswer: "right",
				Difficulty:    d,
				ConceptTag:    tags[pos%len(tags)],
				Explanation:   "because",
			})
		}
	}
	return qs
}

// answerTiers answers the first n of each tier correctly and the rest
// incorrectly.
func answerTiers(easy, medium, hard int) []Submission {
	var subs []Submission
	for tier, n := range []int{easy, medium, hard} {
		for j := 0; j < 10; j++ {
			ans := "wrong"
			if j < n {
				ans = "right"
			}
			subs = append(subs, Submission{QuestionID: tier*10 + j + 1, UserAnswer: ans})
		}
	}
	return subs
}

func TestBandFor_Boundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want Band
	}{
		{100, BandExcellent},
		{90, BandExcellent},
		{89, BandGood},
		{75, BandGood},
		{74, BandAverage},
		{60, BandAverage},
		{59, BandNeedsImprovement},
		{0, BandNeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.pct), "percentage %d", tt.pct)
	}
}

func TestPercentage_Rounds(t *testing.T) {
	for total := 0; total <= MaxScore; total++ {
		got := Percentage(total)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
	assert.Equal(t, 40, Percentage(12))
	assert.Equal(t, 3, Percentage(1))   // 3.33
	assert.Equal(t, 7, Percentage(2))   // 6.67
	assert.Equal(t, 97, Percentage(29)) // 96.67
	assert.Equal(t, 100, Percentage(30))
}

func TestGrade_Scenario(t *testing.T) {
	r := Grade(attemptQuestions(), answerTiers(6, 4, 2))

	assert.Equal(t, 6, r.EasyScore)
	assert.Equal(t, 4, r.MediumScore)
	assert.Equal(t, 2, r.HardScore)
	assert.Equal(t, 12, r.TotalScore)
	assert.Equal(t, 40, r.Percentage)
	assert.Equal(t, BandNeedsImprovement, r.Band)
	assert.Len(t, r.Answers, 30)
}

func TestGrade_TotalIsSumOfTiers(t *testing.T) {
	for e := 0; e <= 10; e += 5 {
		for m := 0; m <= 10; m += 5 {
			for h := 0; h <= 10; h += 5 {
				r := Grade(attemptQuestions(), answerTiers(e, m, h))
				assert.Equal(t, r.EasyScore+r.MediumScore+r.HardScore, r.TotalScore)
				assert.Equal(t, Percentage(r.TotalScore), r.Percentage)
				assert.Equal(t, BandFor(r.Percentage), r.Band)
			}
		}
	}
}

func TestGrade_UnknownQuestionIgnored(t *testing.T) {
	subs := []Submission{
		{QuestionID: 1, UserAnswer: "right"},
		{QuestionID: 999, UserAnswer: "right"},
	}
	r := Grade(attemptQuestions(), subs)

	assert.Equal(t, 1, r.TotalScore)
	require.Len(t, r.Answers, 1)
	assert.Equal(t, 1, r.Answers[0].QuestionID)
}

func TestGrade_RepeatedQuestionCountsOnce(t *testing.T) {
	subs := []Submission{
		{QuestionID: 1, UserAnswer: "right"},
		{QuestionID: 1, UserAnswer: "right"},
	}
	r := Grade(attemptQuestions(), subs)
	assert.Equal(t, 1, r.EasyScore)
	assert.Len(t, r.Answers, 1)
}

func TestGrade_ExactMatchOnly(t *testing.T) {
	subs := []Submission{
		{QuestionID: 1, UserAnswer: "Right"},
		{QuestionID: 2, UserAnswer: " right"},
		{QuestionID: 3, UserAnswer: "right"},
	}
	r := Grade(attemptQuestions(), subs)
	assert.Equal(t, 1, r.TotalScore)
}

func TestGrade_WeakAreas(t *testing.T) {
	qs := attemptQuestions("closures", "goroutines", "interfaces")

	// Answer everything right except two closures questions and one
	// goroutines question.
	subs := answerTiers(10, 10, 10)
	subs[0].UserAnswer = "wrong" // q0 closures
	subs[3].UserAnswer = "wrong" // q3 closures
	subs[4].UserAnswer = "wrong" // q4 goroutines

	r := Grade(qs, subs)
	assert.Equal(t, []string{"closures", "goroutines"}, r.WeakAreas)
	assert.NotContains(t, r.WeakAreas, "interfaces")
}

func TestGrade_NoWeakAreasWhenPerfect(t *testing.T) {
	r := Grade(attemptQuestions(), answerTiers(10, 10, 10))
	assert.Equal(t, 30, r.TotalScore)
	assert.Equal(t, BandExcellent, r.Band)
	assert.NotNil(t, r.WeakAreas)
	assert.Empty(t, r.WeakAreas)
}

func TestGrade_CarriesTimeSpentAndTags(t *testing.T) {
	spent := 42
	r := Grade(attemptQuestions("maps"), []Submission{{QuestionID: 25, UserAnswer: "wrong", TimeSpent: &spent}})
	require.Len(t, r.Answers, 1)
	a := r.Answers[0]
	assert.Equal(t, store.DifficultyHard, a.Difficulty)
	assert.Equal(t, "maps", a.ConceptTag)
	assert.False(t, a.IsCorrect)
	assert.Equal(t, &spent, a.TimeSpent)
}

func TestIncorrectAnswers(t *testing.T) {
	qs := attemptQuestions()
	r := Grade(qs, []Submission{
		{QuestionID: 12, UserAnswer: "wrong"},
		{QuestionID: 2, UserAnswer: "wrong"},
		{QuestionID: 3, UserAnswer: "right"},
	})
	inc := IncorrectAnswers(qs, r.Answers)
	require.Len(t, inc, 2)
	assert.Equal(t, "q1", inc[0].Question)
	assert.Equal(t, "q11", inc[1].Question)
	assert.Equal(t, "right", inc[0].CorrectAnswer)
	assert.Equal(t, "wrong", inc[0].UserAnswer)
}

func TestAnalyze(t *testing.T) {
	qs := attemptQuestions("a", "b")
	r := Grade(qs, answerTiers(10, 5, 0))
	an := Analyze(r.Answers)

	assert.Equal(t, Accuracy{Correct: 10, Total: 10, Percentage: 100}, an.Tiers[store.DifficultyEasy])
	assert.Equal(t, Accuracy{Correct: 5, Total: 10, Percentage: 50}, an.Tiers[store.DifficultyMedium])
	assert.Equal(t, Accuracy{Correct: 0, Total: 10, Percentage: 0}, an.Tiers[store.DifficultyHard])

	require.Len(t, an.Tags, 2)
	assert.LessOrEqual(t, an.Tags[0].Percentage, an.Tags[1].Percentage)
	assert.Equal(t, 15, an.Tags[0].Total)
}

func TestAnalyze_EmptyTiersPresent(t *testing.T) {
	an := Analyze(nil)
	assert.Len(t, an.Tiers, 3)
	assert.Empty(t, an.Tags)
}
