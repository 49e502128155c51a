package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("model id passes through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-exp",
		})
		require.NoError(t, err)
		assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
	})

	t.Run("friendly names are not mapped", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gemini-flash"})
		require.NoError(t, err)
		assert.Equal(t, "gemini-flash", p.ModelID())
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
		assert.Error(t, err)
	})
}

func TestOpenRouterProvider_SendsToBaseURL(t *testing.T) {
	var gotPath, gotAuth, gotModel, gotSchema string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				JSONSchema struct {
					Name string `json:"name"`
				} `json:"json_schema"`
			} `json:"response_format"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel = body.Model
		gotSchema = body.ResponseFormat.JSONSchema.Name

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "gen-1",
			"model": "google/gemini-2.0-flash-exp",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"studyStrategy":"review channels daily"}`},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 120, "completion_tokens": 30, "total_tokens": 150},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "google/gemini-2.0-flash-exp",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are a study coach.",
		Messages: []Message{{Role: RoleUser, Content: "Subject: golang\nScore: 40% (NEEDS_IMPROVEMENT)"}},
		Schema: &Schema{
			Name:       "study-recommendations",
			Definition: map[string]any{"type": "object"},
		},
		MaxTokens: 512,
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-or-test", gotAuth)
	assert.Equal(t, "google/gemini-2.0-flash-exp", gotModel)
	assert.Equal(t, "study-recommendations", gotSchema)
	assert.JSONEq(t, `{"studyStrategy":"review channels daily"}`, string(resp.Content))
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, "end", resp.StopReason)
}
