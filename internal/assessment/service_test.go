package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/questiongen"
	"github.com/abhisek/skilleval/internal/recommend"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/store"
	"github.com/abhisek/skilleval/internal/store/storetest"
)

const correct = "beta"

// backend answers every generation purpose and can be told to fail some.
type backend struct {
	failBatches   atomic.Bool
	failResources atomic.Bool
	failStudy     atomic.Bool
}

func batch(prompt string) string {
	tier := "EASY"
	for _, t := range []string{"MEDIUM", "HARD"} {
		if strings.Contains(prompt, "Difficulty: "+t) {
			tier = t
		}
	}
	items := make([]map[string]any, 10)
	for i := range items {
		tag := "goroutines"
		if i%2 == 1 {
			tag = "channels"
		}
		items[i] = map[string]any{
			"question":      fmt.Sprintf("%s question %d?", tier, i),
			"options":       []string{"alpha", correct, "gamma", "delta"},
			"correctAnswer": correct,
			"conceptTag":    tag,
			"explanation":   "beta is right.",
		}
	}
	data, _ := json.Marshal(items)
	return string(data)
}

const resourcesReply = `{"resources":[{"title":"Go Tour","description":"basics","type":"course","url":"https://go.dev/tour","priority":"high"}],
"studyPlan":{"immediate":"a","shortTerm":"b","longTerm":"c"},"practiceAreas":["channels"]}`

const studyReply = `{"priorityAreas":[{"area":"channels","urgency":"high","reason":"missed"}],"studyStrategy":"daily practice"}`

func (b *backend) respond(req llm.Request) llm.MockResponse {
	switch req.Schema {
	case questiongen.BatchSchema:
		if b.failBatches.Load() {
			return llm.MockResponse{Content: json.RawMessage("not json")}
		}
		return llm.MockResponse{Content: json.RawMessage(batch(req.Messages[0].Content))}
	case recommend.ResourcesSchema:
		if b.failResources.Load() {
			return llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}
		}
		return llm.MockResponse{Content: json.RawMessage(resourcesReply)}
	case recommend.StudySchema:
		if b.failStudy.Load() {
			return llm.MockResponse{Content: json.RawMessage("")}
		}
		return llm.MockResponse{Content: json.RawMessage(studyReply)}
	}
	return llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}
}

type fixture struct {
	svc     *Service
	store   *store.Store
	catalog *catalog.Catalog
	backend *backend
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := storetest.Open(t)
	b := &backend{}
	gw := gateway.New(llm.NewMockProviderFunc(b.respond))
	cat := catalog.New(st.ConceptRepo(), logger.Nop())

	svc := New(Deps{
		Catalog:     cat,
		Attempts:    st.AttemptRepo(),
		Generator:   questiongen.New(gw, questiongen.DefaultConfig(), logger.Nop()),
		Recommender: recommend.New(gw, recommend.DefaultConfig(), logger.Nop()),
	}, DefaultConfig())
	return &fixture{svc: svc, store: st, catalog: cat, backend: b}
}

// answersFor answers the first n questions of each tier correctly and the
// rest wrongly.
func answersFor(v *AttemptView, easy, medium, hard int) []grading.Submission {
	want := map[store.Difficulty]int{
		store.DifficultyEasy:   easy,
		store.DifficultyMedium: medium,
		store.DifficultyHard:   hard,
	}
	seen := map[store.Difficulty]int{}
	out := make([]grading.Submission, 0, len(v.Questions))
	for _, q := range v.Questions {
		ans := "alpha"
		if seen[q.Difficulty] < want[q.Difficulty] {
			ans = correct
		}
		seen[q.Difficulty]++
		out = append(out, grading.Submission{QuestionID: q.ID, UserAnswer: ans})
	}
	return out
}

func TestStart_CreatesThirtyQuestionAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, "u1", "  GoLang ")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, v.AttemptID)
	assert.Equal(t, "golang", v.Concept)
	assert.Equal(t, 45, v.TimeLimitMinutes)
	require.Len(t, v.Questions, 30)
	for i, q := range v.Questions {
		assert.Equal(t, i, q.Position)
		assert.NotZero(t, q.ID)
		assert.Len(t, q.Options, 4)
	}
	assert.Equal(t, store.DifficultyEasy, v.Questions[0].Difficulty)
	assert.Equal(t, store.DifficultyHard, v.Questions[29].Difficulty)

	_, err = f.catalog.Get(ctx, "golang")
	assert.NoError(t, err, "unseen concept is registered on first use")

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correctAnswer")
	assert.NotContains(t, string(raw), "explanation")
}

func TestStart_ReplacesActiveAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)
	second, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)
	assert.NotEqual(t, first.AttemptID, second.AttemptID)

	_, err = f.store.AttemptRepo().Get(ctx, first.AttemptID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	active, err := f.svc.GetActive(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.AttemptID, active.AttemptID)
}

func TestStart_ConcurrentStartsLeaveOneActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			_, err := f.svc.Start(ctx, "u1", "golang")
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}

	total, _, err := f.store.StatsRepo().Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestStart_FailedGenerationKeepsPriorAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	f.backend.failBatches.Store(true)
	_, err = f.svc.Start(ctx, "u1", "golang")
	assert.ErrorIs(t, err, ErrTestGenerationFailed)
	assert.ErrorIs(t, err, gateway.ErrGenerationMalformed)

	active, err := f.svc.GetActive(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.AttemptID, active.AttemptID)
}

func TestStart_FailedGenerationCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.backend.failBatches.Store(true)

	_, err := f.svc.Start(context.Background(), "u1", "golang")
	assert.ErrorIs(t, err, ErrTestGenerationFailed)

	total, _, err := f.store.StatsRepo().Counts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStart_ConceptErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, "u1", "not a key!")
	assert.ErrorIs(t, err, ErrInvalidConcept)

	_, err = f.catalog.Register(ctx, "cobol", "COBOL")
	require.NoError(t, err)
	require.NoError(t, f.catalog.Retire(ctx, "cobol"))
	_, err = f.svc.Start(ctx, "u1", "cobol")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_GradesAndCompletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	res, err := f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 6, 4, 2))
	require.NoError(t, err)

	assert.Equal(t, 6, res.EasyScore)
	assert.Equal(t, 4, res.MediumScore)
	assert.Equal(t, 2, res.HardScore)
	assert.Equal(t, 12, res.TotalScore)
	assert.Equal(t, 40, res.Percentage)
	assert.Equal(t, grading.BandNeedsImprovement, res.Band)
	assert.Equal(t, Message(grading.BandNeedsImprovement, "golang"), res.Message)
	assert.ElementsMatch(t, []string{"goroutines", "channels"}, res.WeakAreas)
	assert.False(t, res.Resources.Fallback)
	assert.Equal(t, "Go Tour", res.Resources.Resources[0].Title)

	_, err = f.svc.GetActive(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := f.store.AttemptRepo().Get(ctx, v.AttemptID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Len(t, stored.Answers, 30)
}

func TestSubmit_ResourceFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	f.backend.failResources.Store(true)
	res, err := f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 10, 10, 10))
	require.NoError(t, err)

	assert.Equal(t, grading.BandExcellent, res.Band)
	assert.Empty(t, res.WeakAreas)
	assert.True(t, res.Resources.Fallback)
	assert.Len(t, res.Resources.Resources, 1)
}

func TestSubmit_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 10, 10, 10))
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 0, 0, 0))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", []grading.Submission{})
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	dup := []grading.Submission{
		{QuestionID: v.Questions[0].ID, UserAnswer: correct},
		{QuestionID: v.Questions[0].ID, UserAnswer: correct},
	}
	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", dup)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	stored, err := f.store.AttemptRepo().Get(ctx, v.AttemptID)
	require.NoError(t, err)
	assert.Equal(t, 30, stored.TotalScore)
}

func TestSubmit_NotOwnedOrMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, v.AttemptID, "u2", answersFor(v, 1, 1, 1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Submit(ctx, uuid.New(), "u1", answersFor(v, 1, 1, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmit_InvalidAnswersLeaveAttemptActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	dup := []grading.Submission{
		{QuestionID: v.Questions[0].ID, UserAnswer: correct},
		{QuestionID: v.Questions[0].ID, UserAnswer: "alpha"},
	}
	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", dup)
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	foreign := []grading.Submission{{QuestionID: 999999, UserAnswer: correct}}
	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", foreign)
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	active, err := f.svc.GetActive(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, v.AttemptID, active.AttemptID)
}

func TestSubmit_UnknownQuestionIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	subs := []grading.Submission{
		{QuestionID: v.Questions[0].ID, UserAnswer: correct},
		{QuestionID: 999999, UserAnswer: correct},
	}
	res, err := f.svc.Submit(ctx, v.AttemptID, "u1", subs)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalScore)
	assert.Equal(t, 3, res.Percentage)
}

func TestGetResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)

	_, err = f.svc.GetResult(ctx, v.AttemptID, "u1")
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 10, 5, 0))
	require.NoError(t, err)

	res, err := f.svc.GetResult(ctx, v.AttemptID, "u1")
	require.NoError(t, err)

	assert.Equal(t, 15, res.TotalScore)
	assert.Equal(t, 50, res.Percentage)
	assert.NotNil(t, res.CompletedAt)
	assert.Equal(t, 10, res.Analysis.Tiers[store.DifficultyEasy].Correct)
	assert.Equal(t, 5, res.Analysis.Tiers[store.DifficultyMedium].Correct)
	assert.Equal(t, 10, res.Analysis.Tiers[store.DifficultyHard].Total)
	require.Len(t, res.Review, 30)
	assert.True(t, res.Review[0].IsCorrect)
	assert.Equal(t, correct, res.Review[29].CorrectAnswer)
	assert.Equal(t, "alpha", res.Review[29].UserAnswer)
	assert.False(t, res.Resources.Fallback)
	require.NotNil(t, res.StudyRecommendations)
	assert.Equal(t, "daily practice", res.StudyRecommendations.StudyStrategy)

	_, err = f.svc.GetResult(ctx, v.AttemptID, "u2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetResult_StudyRecommendationsUnavailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 1, 1, 1))
	require.NoError(t, err)

	f.backend.failStudy.Store(true)
	res, err := f.svc.GetResult(ctx, v.AttemptID, "u1")
	require.NoError(t, err)
	assert.Nil(t, res.StudyRecommendations)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"studyRecommendations":null`)
}

func TestListCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, key := range []string{"golang", "python"} {
		v, err := f.svc.Start(ctx, "u1", key)
		require.NoError(t, err)
		_, err = f.svc.Submit(ctx, v.AttemptID, "u1", answersFor(v, 10, 10, 5))
		require.NoError(t, err)
	}
	_, err := f.svc.Start(ctx, "u1", "react")
	require.NoError(t, err)

	list, err := f.svc.ListCompleted(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, 25, s.TotalScore)
		assert.Equal(t, grading.BandGood, s.Band)
	}

	other, err := f.svc.ListCompleted(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStats_AfterCompletedAttempts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	weak, err := f.svc.Start(ctx, "u1", "golang")
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, weak.AttemptID, "u1", answersFor(weak, 6, 4, 2))
	require.NoError(t, err)

	strong, err := f.svc.Start(ctx, "u2", "python")
	require.NoError(t, err)
	best, err := f.svc.Submit(ctx, strong.AttemptID, "u2", answersFor(strong, 10, 10, 5))
	require.NoError(t, err)

	_, err = f.svc.Start(ctx, "u3", "react")
	require.NoError(t, err)

	stats, err := reporting.New(f.store.StatsRepo()).Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Overview.TotalAttempts)
	assert.Equal(t, 2, stats.Overview.CompletedAttempts)
	assert.Equal(t, 66.67, stats.Overview.CompletionRate)

	bands := map[grading.Band]int{}
	for _, b := range stats.Bands {
		bands[b.Band] = b.Count
	}
	assert.Equal(t, 1, bands[grading.BandNeedsImprovement])
	assert.Equal(t, 1, bands[grading.BandGood])
	assert.Equal(t, 0, bands[grading.BandExcellent])

	require.Len(t, stats.Concepts, 3)
	assert.Equal(t, "golang", stats.Concepts[0].Concept)
	assert.Equal(t, 40.0, stats.Concepts[0].MeanPercentage)
	assert.Equal(t, "python", stats.Concepts[1].Concept)
	assert.Equal(t, float64(best.Percentage), stats.Concepts[1].MeanPercentage)
	assert.Equal(t, "react", stats.Concepts[2].Concept)
	assert.Equal(t, 0, stats.Concepts[2].Completed)

	require.Len(t, stats.Top, 2)
	assert.Equal(t, strong.AttemptID, stats.Top[0].AttemptID)
	assert.Len(t, stats.Recent, 2)
}

func TestGetActive_None(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetActive(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateSubmissions(t *testing.T) {
	neg := -1
	zero := 0
	tests := []struct {
		name    string
		answers []grading.Submission
		wantErr bool
	}{
		{"empty", nil, true},
		{"zero id", []grading.Submission{{QuestionID: 0, UserAnswer: "a"}}, true},
		{"duplicate id", []grading.Submission{{QuestionID: 1}, {QuestionID: 1}}, true},
		{"negative time", []grading.Submission{{QuestionID: 1, TimeSpent: &neg}}, true},
		{"zero time", []grading.Submission{{QuestionID: 1, TimeSpent: &zero}}, false},
		{"valid", []grading.Submission{{QuestionID: 1}, {QuestionID: 2, UserAnswer: "x"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSubmissions(tt.answers)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAnswers)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Outstanding work! You have a strong command of sql.", Message(grading.BandExcellent, "sql"))
	assert.Contains(t, Message(grading.BandGood, "sql"), "solid understanding of sql")
	assert.Contains(t, Message(grading.BandAverage, "sql"), "strengthen your sql skills")
	assert.Contains(t, Message(grading.BandNeedsImprovement, "sql"), "fundamentals of sql")
}
