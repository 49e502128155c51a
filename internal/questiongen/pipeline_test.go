package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store"
)

func newPipeline(mock *llm.MockProvider) *Pipeline {
	return New(gateway.New(mock), DefaultConfig(), logger.Nop())
}

func TestGenerateQuestionSet_ThirtyQuestionsTenPerTier(t *testing.T) {
	mock := llm.NewMockProviderFunc(tierResponder(nil))
	qs, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "golang", "Go")
	require.NoError(t, err)
	require.Len(t, qs, 30)

	counts := map[store.Difficulty]int{}
	for i, q := range qs {
		counts[q.Difficulty]++
		assert.Equal(t, i, q.Position)
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
	assert.Equal(t, 10, counts[store.DifficultyEasy])
	assert.Equal(t, 10, counts[store.DifficultyMedium])
	assert.Equal(t, 10, counts[store.DifficultyHard])

	assert.Equal(t, store.DifficultyEasy, qs[0].Difficulty)
	assert.Equal(t, store.DifficultyMedium, qs[10].Difficulty)
	assert.Equal(t, store.DifficultyHard, qs[29].Difficulty)
	assert.Equal(t, 3, mock.CallCount())
}

func TestGenerateQuestionSet_SalvagesProseWrappedBatch(t *testing.T) {
	mock := llm.NewMockProviderFunc(tierResponder(func(tier string) (llm.MockResponse, bool) {
		if tier != "MEDIUM" {
			return llm.MockResponse{}, false
		}
		wrapped := "Here are the questions:\n```json\n" + string(batchJSON(tier, 10)) + "\n```"
		return llm.MockResponse{Content: json.RawMessage(wrapped)}, true
	}))

	qs, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "golang", "")
	require.NoError(t, err)
	assert.Len(t, qs, 30)
}

func TestGenerateQuestionSet_Failures(t *testing.T) {
	nine := batchJSON("HARD", 9)

	var badAnswer []map[string]any
	require.NoError(t, json.Unmarshal(batchJSON("EASY", 10), &badAnswer))
	badAnswer[4]["correctAnswer"] = "epsilon"
	badAnswerJSON, _ := json.Marshal(badAnswer)

	var noOptions []map[string]any
	require.NoError(t, json.Unmarshal(batchJSON("MEDIUM", 10), &noOptions))
	noOptions[0]["options"] = []string{}
	noOptionsJSON, _ := json.Marshal(noOptions)

	tests := []struct {
		name string
		tier string
		resp llm.MockResponse
	}{
		{"nine items", "HARD", llm.MockResponse{Content: nine}},
		{"answer not in options", "EASY", llm.MockResponse{Content: badAnswerJSON}},
		{"empty option list", "MEDIUM", llm.MockResponse{Content: noOptionsJSON}},
		{"not json", "EASY", llm.MockResponse{Content: json.RawMessage(`"not json"`)}},
		{"empty reply", "MEDIUM", llm.MockResponse{Content: json.RawMessage(``)}},
		{"provider down", "HARD", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProviderFunc(tierResponder(func(tier string) (llm.MockResponse, bool) {
				return tt.resp, tier == tt.tier
			}))
			qs, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "golang", "")
			assert.ErrorIs(t, err, ErrTestGenerationFailed)
			assert.Nil(t, qs)
		})
	}
}

func TestGenerateQuestionSet_WrapsGatewayErrors(t *testing.T) {
	mock := llm.NewMockProviderFunc(tierResponder(func(tier string) (llm.MockResponse, bool) {
		return llm.MockResponse{Content: json.RawMessage(`"not json"`)}, tier == "EASY"
	}))
	_, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "golang", "")
	assert.ErrorIs(t, err, ErrTestGenerationFailed)
	assert.ErrorIs(t, err, gateway.ErrGenerationMalformed)
}

func TestGenerateQuestionSet_DefaultsConceptTag(t *testing.T) {
	mock := llm.NewMockProviderFunc(func(req llm.Request) llm.MockResponse {
		var items []map[string]any
		_ = json.Unmarshal(batchJSON(tierOf(req), 10), &items)
		for _, it := range items {
			delete(it, "conceptTag")
		}
		data, _ := json.Marshal(items)
		return llm.MockResponse{Content: data}
	})

	qs, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "rust", "")
	require.NoError(t, err)
	for _, q := range qs {
		assert.Equal(t, "rust", q.ConceptTag)
	}
}

func TestGenerateQuestionSet_RequestsUseBatchSchema(t *testing.T) {
	mock := llm.NewMockProviderFunc(tierResponder(nil))
	_, err := newPipeline(mock).GenerateQuestionSet(context.Background(), "golang", "")
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, req := range mock.Requests() {
		assert.Equal(t, BatchSchema, req.Schema)
		seen[tierOf(req)] = true
	}
	assert.Equal(t, map[string]bool{"EASY": true, "MEDIUM": true, "HARD": true}, seen)
}
