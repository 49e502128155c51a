package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/internal/store"
	"github.com/abhisek/skilleval/internal/store/storetest"
	"github.com/google/uuid"
)

func TestOpenClose(t *testing.T) {
	s := storetest.Open(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.Driver() != store.DriverSQLite {
		t.Fatalf("driver = %q, want sqlite", s.Driver())
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := store.Open("oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := storetest.Open(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := storetest.Open(t)
	for _, table := range []string{"concepts", "attempts", "questions", "answers", "llm_request_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestConceptUpsertIsIdempotent(t *testing.T) {
	s := storetest.Open(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "python", "Python basics", true)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := repo.Upsert(ctx, "python", "Python fundamentals", true)
	if err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("upsert created a second row: %d != %d", first.ID, second.ID)
	}
	if second.Description != "Python fundamentals" {
		t.Errorf("description = %q, want updated value", second.Description)
	}

	count, err := s.Client().Concept.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("concepts = %d, want 1", count)
	}
}

func TestConceptListFiltersInactive(t *testing.T) {
	s := storetest.Open(t)
	repo := s.ConceptRepo()
	ctx := context.Background()

	mustUpsert(t, repo, "react", true)
	mustUpsert(t, repo, "cobol", false)
	mustUpsert(t, repo, "java", true)

	active, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 2 || active[0].Key != "java" || active[1].Key != "react" {
		t.Fatalf("active = %+v, want [java react]", active)
	}

	all, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d concepts, want 3", len(all))
	}
}

func TestConceptGetNotFound(t *testing.T) {
	s := storetest.Open(t)
	_, err := s.ConceptRepo().Get(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceActiveKeepsSingleActiveAttempt(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)
	repo := s.AttemptRepo()

	first, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if len(first.Questions) != 30 {
		t.Fatalf("questions = %d, want 30", len(first.Questions))
	}

	second, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected a new attempt id")
	}

	if _, err := repo.Get(ctx, first.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("first attempt still readable: %v", err)
	}

	active, err := s.Client().Attempt.Query().
		Where(attempt.UserID("u1"), attempt.Completed(false)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if active != 1 {
		t.Fatalf("active attempts = %d, want 1", active)
	}

	questions, err := s.Client().Question.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if questions != 30 {
		t.Fatalf("questions = %d, want 30 (old ones discarded)", questions)
	}
}

func TestReplaceActiveConcurrentStarts(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)
	repo := s.AttemptRepo()

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID)); err != nil {
				t.Errorf("start: %v", err)
			}
		}()
	}
	wg.Wait()

	active, err := s.Client().Attempt.Query().
		Where(attempt.UserID("u1"), attempt.Completed(false)).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if active != 1 {
		t.Fatalf("active attempts = %d, want 1", active)
	}
}

func TestReplaceActiveLeavesOtherPairsAlone(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	goLang := mustUpsert(t, s.ConceptRepo(), "golang", true)
	py := mustUpsert(t, s.ConceptRepo(), "python", true)
	repo := s.AttemptRepo()

	a, err := repo.ReplaceActive(ctx, newAttempt("u1", goLang.ID))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := repo.ReplaceActive(ctx, newAttempt("u1", py.ID)); err != nil {
		t.Fatalf("start other concept: %v", err)
	}
	if _, err := repo.ReplaceActive(ctx, newAttempt("u2", goLang.ID)); err != nil {
		t.Fatalf("start other user: %v", err)
	}

	if _, err := repo.Get(ctx, a.ID); err != nil {
		t.Fatalf("attempt for another pair was removed: %v", err)
	}
}

func TestGetOrdersQuestionsByPosition(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)

	created, err := s.AttemptRepo().ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	a, err := s.AttemptRepo().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.ConceptKey != "golang" {
		t.Errorf("concept key = %q, want golang", a.ConceptKey)
	}
	if a.TimeLimitMinutes != 45 {
		t.Errorf("time limit = %d, want 45", a.TimeLimitMinutes)
	}
	for i, q := range a.Questions {
		if q.Position != i {
			t.Fatalf("question %d has position %d", i, q.Position)
		}
	}
	if a.Questions[0].Difficulty != store.DifficultyEasy || a.Questions[29].Difficulty != store.DifficultyHard {
		t.Errorf("unexpected tier order: %s..%s", a.Questions[0].Difficulty, a.Questions[29].Difficulty)
	}
}

func TestCompleteWritesAnswersAtomically(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)
	repo := s.AttemptRepo()

	a, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	spent := 12
	completion := store.Completion{
		EasyScore:  1,
		TotalScore: 1,
		Percentage: 3,
		Band:       "NEEDS_IMPROVEMENT",
		WeakAreas:  []string{"golang"},
		Answers: []store.Answer{
			{QuestionID: a.Questions[0].ID, UserAnswer: "a", IsCorrect: true, Difficulty: store.DifficultyEasy, ConceptTag: "golang", TimeSpent: &spent},
			{QuestionID: a.Questions[1].ID, UserAnswer: "b", IsCorrect: false, Difficulty: store.DifficultyEasy, ConceptTag: "golang"},
		},
		CompletedAt: time.Now().UTC(),
	}
	if err := repo.Complete(ctx, a.ID, completion); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Fatal("attempt not marked completed")
	}
	if len(got.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(got.Answers))
	}
	if got.Answers[0].TimeSpent == nil || *got.Answers[0].TimeSpent != 12 {
		t.Errorf("time spent not stored: %v", got.Answers[0].TimeSpent)
	}
	if got.Answers[1].TimeSpent != nil {
		t.Errorf("expected nil time spent, got %d", *got.Answers[1].TimeSpent)
	}

	// A second completion must not change anything.
	completion.Percentage = 100
	err = repo.Complete(ctx, a.ID, completion)
	if !errors.Is(err, store.ErrAlreadyCompleted) {
		t.Fatalf("second complete err = %v, want ErrAlreadyCompleted", err)
	}
	got, err = repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Percentage != 3 || len(got.Answers) != 2 {
		t.Fatalf("attempt changed after rejected completion: %d%%, %d answers", got.Percentage, len(got.Answers))
	}
}

func TestCompleteFailureRollsBack(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)
	repo := s.AttemptRepo()

	a, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Two answers for the same question violate the unique index, so the
	// score update must be rolled back with them.
	err = repo.Complete(ctx, a.ID, store.Completion{
		Band: "AVERAGE",
		Answers: []store.Answer{
			{QuestionID: a.Questions[0].ID, UserAnswer: "a", Difficulty: store.DifficultyEasy, ConceptTag: "golang"},
			{QuestionID: a.Questions[0].ID, UserAnswer: "b", Difficulty: store.DifficultyEasy, ConceptTag: "golang"},
		},
		CompletedAt: time.Now(),
	})
	if err == nil {
		t.Fatal("expected error")
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed || len(got.Answers) != 0 {
		t.Fatalf("partial completion persisted: completed=%v answers=%d", got.Completed, len(got.Answers))
	}
}

func TestCompleteUnknownAttempt(t *testing.T) {
	s := storetest.Open(t)
	err := s.AttemptRepo().Complete(context.Background(), uuid.New(), store.Completion{})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestActiveForUserAndListCompleted(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	c := mustUpsert(t, s.ConceptRepo(), "golang", true)
	repo := s.AttemptRepo()

	if _, err := repo.ActiveForUser(ctx, "u1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	a, err := repo.ReplaceActive(ctx, newAttempt("u1", c.ID))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	active, err := repo.ActiveForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if active.ID != a.ID || len(active.Questions) != 30 {
		t.Fatalf("unexpected active attempt: %s with %d questions", active.ID, len(active.Questions))
	}

	completeAttempt(t, repo, a, 50, time.Now())
	if _, err := repo.ActiveForUser(ctx, "u1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("completed attempt still active: %v", err)
	}

	done, err := repo.ListCompleted(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(done) != 1 || done[0].ConceptKey != "golang" || done[0].Percentage != 50 {
		t.Fatalf("completed = %+v", done)
	}
}

func TestStats(t *testing.T) {
	s := storetest.Open(t)
	ctx := context.Background()
	goLang := mustUpsert(t, s.ConceptRepo(), "golang", true)
	py := mustUpsert(t, s.ConceptRepo(), "python", true)
	repo := s.AttemptRepo()
	base := time.Now().UTC()

	a1, _ := repo.ReplaceActive(ctx, newAttempt("u1", goLang.ID))
	completeAttempt(t, repo, a1, 40, base.Add(-3*time.Hour))
	a2, _ := repo.ReplaceActive(ctx, newAttempt("u2", goLang.ID))
	completeAttempt(t, repo, a2, 60, base.Add(-2*time.Hour))
	a3, _ := repo.ReplaceActive(ctx, newAttempt("u3", py.ID))
	completeAttempt(t, repo, a3, 90, base.Add(-1*time.Hour))
	if _, err := repo.ReplaceActive(ctx, newAttempt("u4", py.ID)); err != nil {
		t.Fatalf("start: %v", err)
	}

	stats := s.StatsRepo()
	total, completed, err := stats.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 4 || completed != 3 {
		t.Fatalf("counts = %d/%d, want 4/3", total, completed)
	}

	bands, err := stats.BandCounts(ctx)
	if err != nil {
		t.Fatalf("bands: %v", err)
	}
	if bands["NEEDS_IMPROVEMENT"] != 1 || bands["AVERAGE"] != 1 || bands["EXCELLENT"] != 1 {
		t.Fatalf("bands = %v", bands)
	}

	per, err := stats.ConceptStats(ctx)
	if err != nil {
		t.Fatalf("concept stats: %v", err)
	}
	if len(per) != 2 {
		t.Fatalf("concept stats = %+v", per)
	}
	for _, st := range per {
		switch st.ConceptKey {
		case "golang":
			if st.Attempts != 2 || st.Completed != 2 || st.MeanPercentage != 50 {
				t.Errorf("golang stats = %+v", st)
			}
		case "python":
			if st.Attempts != 2 || st.Completed != 1 || st.MeanPercentage != 90 {
				t.Errorf("python stats = %+v", st)
			}
		default:
			t.Errorf("unexpected concept %q", st.ConceptKey)
		}
	}

	recent, err := stats.RecentCompleted(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != a3.ID || recent[1].ID != a2.ID {
		t.Fatalf("recent order wrong: %+v", recent)
	}

	top, err := stats.TopCompleted(ctx, 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 || top[0].Percentage != 90 || top[2].Percentage != 40 {
		t.Fatalf("top order wrong: %+v", top)
	}
}

func TestLLMEvents(t *testing.T) {
	s := storetest.Open(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []store.LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "question-batch", InputTokens: 100, OutputTokens: 900, LatencyMs: 10, Success: true, RequestBody: "req", ResponseBody: "[]"},
		{Provider: "mock", Model: "m1", Purpose: "question-batch", InputTokens: 100, OutputTokens: 100, LatencyMs: 30, Success: false, ErrorMessage: "boom"},
		{Provider: "mock", Model: "m2", Purpose: "resources", InputTokens: 50, OutputTokens: 50, LatencyMs: 20, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}

	failed, err := repo.QueryLLMEvents(ctx, store.QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "boom" {
		t.Fatalf("failed = %+v", failed)
	}

	limited, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Purpose: "question-batch", Limit: 1})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited = %d, want 1", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, all[len(all)-1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "req" || got.ResponseBody != "[]" {
		t.Fatalf("event bodies not stored: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("missing event = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	for _, u := range byPurpose {
		if u.Purpose == "question-batch" {
			if u.Calls != 2 || u.InputTokens != 200 || u.OutputTokens != 1000 || u.AvgLatencyMs != 20 {
				t.Errorf("question-batch usage = %+v", u)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("models = %d, want 2", len(byModel))
	}
}

func mustUpsert(t *testing.T, repo store.ConceptRepo, key string, active bool) *store.Concept {
	t.Helper()
	c, err := repo.Upsert(context.Background(), key, key+" concept", active)
	if err != nil {
		t.Fatalf("upsert %s: %v", key, err)
	}
	return c
}

func newAttempt(userID string, conceptID int) store.NewAttempt {
	in := store.NewAttempt{UserID: userID, ConceptID: conceptID, TimeLimitMinutes: 45}
	pos := 0
	for _, d := range store.Difficulties() {
		for i := 0; i < 10; i++ {
			in.Questions = append(in.Questions, store.Question{
				Position:      pos,
				Text:          "question",
				Options:       []string{"a", "b", "c", "d"},
				CorrectAnswer: "a",
				Difficulty:    d,
				ConceptTag:    "golang",
				Explanation:   "because",
			})
			pos++
		}
	}
	return in
}

func completeAttempt(t *testing.T, repo store.AttemptRepo, a *store.Attempt, pct int, at time.Time) {
	t.Helper()
	band := "NEEDS_IMPROVEMENT"
	switch {
	case pct >= 90:
		band = "EXCELLENT"
	case pct >= 75:
		band = "GOOD"
	case pct >= 60:
		band = "AVERAGE"
	}
	err := repo.Complete(context.Background(), a.ID, store.Completion{
		Percentage: pct,
		Band:       band,
		Answers: []store.Answer{
			{QuestionID: a.Questions[0].ID, UserAnswer: "a", IsCorrect: true, Difficulty: store.DifficultyEasy, ConceptTag: "golang"},
		},
		CompletedAt: at,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
}
