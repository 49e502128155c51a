package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store"
)

func sampleInput() Input {
	return Input{
		ConceptKey: "golang",
		WeakAreas:  []string{"channels", "generics"},
		Band:       grading.BandAverage,
		Percentage: 60,
		Incorrect: []grading.Incorrect{{
			Question:      "What does close do to a nil channel?",
			UserAnswer:    "nothing",
			CorrectAnswer: "panics",
			ConceptTag:    "channels",
			Difficulty:    store.DifficultyMedium,
		}},
	}
}

func newEngine(mock *llm.MockProvider) *Engine {
	return New(gateway.New(mock), DefaultConfig(), logger.Nop())
}

const resourcesReply = `{
  "resources": [
    {"title": "Effective Go", "description": "Idioms for channels", "type": "documentation", "url": "https://go.dev/doc/effective_go", "priority": "high", "estimatedTime": "2 hours", "difficulty": "intermediate", "targetWeakness": "channels"},
    {"title": "Generics tutorial", "description": "Type parameters", "type": "article", "url": "https://go.dev/doc/tutorial/generics", "priority": "medium", "targetWeakness": "generics"}
  ],
  "studyPlan": {"immediate": "Read Effective Go", "shortTerm": "Write a worker pool", "longTerm": "Build a service"},
  "practiceAreas": ["channels", "generics"]
}`

func TestPersonalizedResources_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(resourcesReply)})
	res := newEngine(mock).PersonalizedResources(context.Background(), sampleInput())

	assert.False(t, res.Fallback)
	require.Len(t, res.Resources, 2)
	assert.Equal(t, "Effective Go", res.Resources[0].Title)
	assert.Equal(t, "channels", res.Resources[0].TargetWeakness)
	assert.Equal(t, "Write a worker pool", res.StudyPlan.ShortTerm)
	assert.Equal(t, []string{"channels", "generics"}, res.PracticeAreas)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, ResourcesSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Subject: golang")
	assert.Contains(t, req.Messages[0].Content, "Weak areas: channels, generics")
	assert.Contains(t, req.Messages[0].Content, "Correct answer: panics")
}

func TestPersonalizedResources_TrimsLongList(t *testing.T) {
	items := make([]Resource, 11)
	for i := range items {
		items[i] = Resource{Title: fmt.Sprintf("resource %d", i), Description: "d", Type: "article", Priority: "low"}
	}
	reply, err := json.Marshal(map[string]any{
		"resources": items,
		"studyPlan": StudyPlan{Immediate: "a", ShortTerm: "b", LongTerm: "c"},
	})
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	res := newEngine(mock).PersonalizedResources(context.Background(), sampleInput())

	assert.False(t, res.Fallback)
	require.Len(t, res.Resources, MaxResources)
	assert.Equal(t, "resource 0", res.Resources[0].Title)
	assert.Equal(t, "resource 7", res.Resources[MaxResources-1].Title)
}

func TestPersonalizedResources_MissingPracticeAreasUsesWeakAreas(t *testing.T) {
	reply := `{"resources":[{"title":"t","description":"d","type":"article","priority":"high"}],
"studyPlan":{"immediate":"a","shortTerm":"b","longTerm":"c"}}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	res := newEngine(mock).PersonalizedResources(context.Background(), sampleInput())

	assert.False(t, res.Fallback)
	assert.Equal(t, []string{"channels", "generics"}, res.PracticeAreas)
}

func TestPersonalizedResources_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider unavailable", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"malformed", llm.MockResponse{Content: json.RawMessage("I cannot help with that.")}},
		{"schema violation", llm.MockResponse{Content: json.RawMessage(`{"resources":[],"studyPlan":{"immediate":"a","shortTerm":"b","longTerm":"c"}}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			res := newEngine(mock).PersonalizedResources(context.Background(), sampleInput())
			assert.Equal(t, Fallback(sampleInput()), res)
		})
	}
}

func TestFallback(t *testing.T) {
	in := sampleInput()
	res := Fallback(in)

	assert.True(t, res.Fallback)
	require.Len(t, res.Resources, 1)
	assert.Equal(t, "fundamentals", res.Resources[0].TargetWeakness)
	assert.True(t, strings.HasPrefix(res.Resources[0].URL, "https://"))
	assert.NotEmpty(t, res.StudyPlan.Immediate)
	assert.NotEmpty(t, res.StudyPlan.ShortTerm)
	assert.NotEmpty(t, res.StudyPlan.LongTerm)
	assert.Equal(t, in.WeakAreas, res.PracticeAreas)

	res.PracticeAreas[0] = "mutated"
	assert.Equal(t, "channels", in.WeakAreas[0])
}

func TestFallback_NoWeakAreas(t *testing.T) {
	res := Fallback(Input{ConceptKey: "sql"})
	assert.NotNil(t, res.PracticeAreas)
	assert.Empty(t, res.PracticeAreas)
}

func TestStudyRecommendations_Generated(t *testing.T) {
	reply := "```json\n" + `{
  "priorityAreas": [{"area": "channels", "urgency": "high", "reason": "Most misses"}],
  "studyStrategy": "Short daily sessions.",
  "practiceRecommendations": [{"type": "coding", "description": "Write pipelines"}],
  "weaknessBreakdown": {"conceptual": ["channels"], "practical": [], "foundational": ["generics"]}
}` + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	rec := newEngine(mock).StudyRecommendations(context.Background(), sampleInput())

	require.NotNil(t, rec)
	require.Len(t, rec.PriorityAreas, 1)
	assert.Equal(t, "high", rec.PriorityAreas[0].Urgency)
	assert.Equal(t, "Short daily sessions.", rec.StudyStrategy)
	assert.Equal(t, []string{"generics"}, rec.WeaknessBreakdown.Foundational)
	assert.Equal(t, StudySchema, mock.Calls[0].Schema)
}

func TestStudyRecommendations_NilOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("no json here")})
	assert.Nil(t, newEngine(mock).StudyRecommendations(context.Background(), sampleInput()))

	empty := llm.NewMockProvider()
	assert.Nil(t, newEngine(empty).StudyRecommendations(context.Background(), sampleInput()))
}

func TestBuildUserMessage_CapsIncorrectList(t *testing.T) {
	in := sampleInput()
	in.Incorrect = make([]grading.Incorrect, maxIncorrectInPrompt+5)
	msg := buildUserMessage(in)
	assert.Contains(t, msg, "... and 5 more")

	in.Incorrect = nil
	in.WeakAreas = nil
	msg = buildUserMessage(in)
	assert.Contains(t, msg, "Weak areas: None")
}
