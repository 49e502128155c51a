package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/store"
)

type fakeStats struct {
	total, completed int
	bands            map[string]int
	concepts         []store.ConceptStat
	recent, top      []store.Attempt
	err              error
	limits           []int
}

func (f *fakeStats) Counts(context.Context) (int, int, error) {
	return f.total, f.completed, f.err
}

func (f *fakeStats) BandCounts(context.Context) (map[string]int, error) {
	return f.bands, nil
}

func (f *fakeStats) ConceptStats(context.Context) ([]store.ConceptStat, error) {
	return f.concepts, nil
}

func (f *fakeStats) RecentCompleted(_ context.Context, limit int) ([]store.Attempt, error) {
	f.limits = append(f.limits, limit)
	return f.recent, nil
}

func (f *fakeStats) TopCompleted(_ context.Context, limit int) ([]store.Attempt, error) {
	f.limits = append(f.limits, limit)
	return f.top, nil
}

func TestStats_Aggregates(t *testing.T) {
	done := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeStats{
		total:     3,
		completed: 2,
		bands:     map[string]int{"GOOD": 1, "NEEDS_IMPROVEMENT": 1},
		concepts: []store.ConceptStat{
			{ConceptKey: "python", Attempts: 1, Completed: 1, MeanPercentage: 80},
			{ConceptKey: "react", Attempts: 1, Completed: 0},
			{ConceptKey: "golang", Attempts: 1, Completed: 1, MeanPercentage: 33.3333},
		},
		recent: []store.Attempt{{ID: uuid.New(), UserID: "u1", ConceptKey: "python", Percentage: 80, Band: "GOOD", CompletedAt: &done}},
	}

	st, err := New(repo).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Overview{TotalAttempts: 3, CompletedAttempts: 2, CompletionRate: 66.67}, st.Overview)

	require.Len(t, st.Bands, 4)
	assert.Equal(t, BandCount{Band: grading.BandExcellent, Count: 0}, st.Bands[0])
	assert.Equal(t, BandCount{Band: grading.BandGood, Count: 1}, st.Bands[1])
	assert.Equal(t, BandCount{Band: grading.BandAverage, Count: 0}, st.Bands[2])
	assert.Equal(t, BandCount{Band: grading.BandNeedsImprovement, Count: 1}, st.Bands[3])

	require.Len(t, st.Concepts, 3)
	assert.Equal(t, "golang", st.Concepts[0].Concept)
	assert.Equal(t, 33.33, st.Concepts[0].MeanPercentage)
	assert.Equal(t, "python", st.Concepts[1].Concept)
	assert.Equal(t, "react", st.Concepts[2].Concept)

	require.Len(t, st.Recent, 1)
	assert.Equal(t, "python", st.Recent[0].Concept)
	assert.Empty(t, st.Top)
	assert.Equal(t, []int{LeaderboardSize, LeaderboardSize}, repo.limits)
}

func TestStats_Empty(t *testing.T) {
	st, err := New(&fakeStats{}).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Overview.CompletionRate)
	assert.Len(t, st.Bands, 4)
	for _, b := range st.Bands {
		assert.Zero(t, b.Count)
	}
	assert.NotNil(t, st.Concepts)
	assert.NotNil(t, st.Recent)
}

func TestStats_PropagatesErrors(t *testing.T) {
	_, err := New(&fakeStats{err: errors.New("db down")}).Stats(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestRankConcepts_TiesByKey(t *testing.T) {
	out := rankConcepts([]store.ConceptStat{
		{ConceptKey: "b", Completed: 1, MeanPercentage: 50},
		{ConceptKey: "a", Completed: 1, MeanPercentage: 50},
	})
	assert.Equal(t, "a", out[0].Concept)
	assert.Equal(t, "b", out[1].Concept)
}

func TestReview_JoinsInQuestionOrder(t *testing.T) {
	spent := 12
	questions := []store.Question{
		{ID: 10, Position: 0, Text: "q0", Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: store.DifficultyEasy, Explanation: "e0"},
		{ID: 11, Position: 1, Text: "q1", Options: []string{"a", "b"}, CorrectAnswer: "b", Difficulty: store.DifficultyMedium},
		{ID: 12, Position: 2, Text: "q2", Options: []string{"a", "b"}, CorrectAnswer: "a", Difficulty: store.DifficultyHard},
	}
	answers := []store.Answer{
		{QuestionID: 12, UserAnswer: "b", IsCorrect: false},
		{QuestionID: 10, UserAnswer: "a", IsCorrect: true, TimeSpent: &spent},
	}

	items := Review(questions, answers)
	require.Len(t, items, 3)

	assert.Equal(t, "q0", items[0].Question)
	assert.True(t, items[0].Answered)
	assert.True(t, items[0].IsCorrect)
	assert.Equal(t, &spent, items[0].TimeSpent)
	assert.Equal(t, "e0", items[0].Explanation)

	assert.False(t, items[1].Answered)
	assert.Equal(t, "b", items[1].CorrectAnswer)

	assert.True(t, items[2].Answered)
	assert.False(t, items[2].IsCorrect)
	assert.Equal(t, "b", items[2].UserAnswer)
}
