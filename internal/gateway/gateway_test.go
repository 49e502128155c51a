package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/llm"
)

type item struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func reply(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestGenerate_Decodes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		shape Shape
		want  int
	}{
		{"strict array", `[{"question":"q1","options":["a"]},{"question":"q2","options":["b"]}]`, ShapeArray, 2},
		{"prose wrapped", "Sure! Here are your questions:\n[{\"question\":\"q1\",\"options\":[\"a\"]}]\nGood luck.", ShapeArray, 1},
		{"fenced", "```json\n[{\"question\":\"q1\",\"options\":[\"a\"]}]\n```", ShapeArray, 1},
		{"braces in strings", `Result: [{"question":"q1","options":["x]","a } b","\"{[\""]}] trailing ]`, ShapeArray, 1},
		{"object wrapper", `{"questions":[{"question":"q1","options":["a"]}]}`, ShapeArray, 1},
		{"object wrapper in prose", "Output:\n{\"items\":[{\"question\":\"q1\",\"options\":[\"a\"]}]}", ShapeArray, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(llm.NewMockProvider(reply(tt.reply)))
			var out []item
			err := g.Generate(context.Background(), Call{Purpose: "test", Prompt: "p", Shape: tt.shape}, &out)
			require.NoError(t, err)
			assert.Len(t, out, tt.want)
			assert.Equal(t, "q1", out[0].Question)
		})
	}
}

func TestGenerate_BracesInsideStringsDoNotBreakBalance(t *testing.T) {
	g := New(llm.NewMockProvider(reply(`note {"title":"use } carefully","n":1} end`)))
	var out struct {
		Title string `json:"title"`
		N     int    `json:"n"`
	}
	require.NoError(t, g.Generate(context.Background(), Call{Prompt: "p"}, &out))
	assert.Equal(t, "use } carefully", out.Title)
	assert.Equal(t, 1, out.N)
}

func TestGenerate_SkipsInvalidSpans(t *testing.T) {
	g := New(llm.NewMockProvider(reply(`{not json} then {"ok":true}`)))
	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, g.Generate(context.Background(), Call{Prompt: "p"}, &out))
	assert.True(t, out.OK)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want error
	}{
		{"empty reply", reply(""), ErrGenerationUnavailable},
		{"whitespace reply", reply("  \n\t "), ErrGenerationUnavailable},
		{"not json", reply(`"not json"`), ErrGenerationMalformed},
		{"prose only", reply("I cannot help with that."), ErrGenerationMalformed},
		{"unbalanced", reply(`[{"question":"q1"`), ErrGenerationMalformed},
		{"provider outage", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}, ErrGenerationUnavailable},
		{"rate limited", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}, ErrGenerationUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(llm.NewMockProvider(tt.resp))
			var out []item
			err := g.Generate(context.Background(), Call{Prompt: "p", Shape: ShapeArray}, &out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_TruncatedReplyWithCompleteSpan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(`[{"question":"q1","options":["a"]}] and then some tr`)},
	})
	var out []item
	require.NoError(t, New(mock).Generate(context.Background(), Call{Prompt: "p", Shape: ShapeArray}, &out))
	assert.Len(t, out, 1)

	mock = llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(`[{"question":"q1","opt`)},
	})
	err := New(mock).Generate(context.Background(), Call{Prompt: "p", Shape: ShapeArray}, &out)
	assert.ErrorIs(t, err, ErrGenerationMalformed)
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestGenerate_TimeoutIsUnavailable(t *testing.T) {
	g := New(blockingProvider{}, WithTimeout(20*time.Millisecond))

	start := time.Now()
	var out map[string]any
	err := g.Generate(context.Background(), Call{Prompt: "p"}, &out)

	assert.ErrorIs(t, err, ErrGenerationUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGenerate_SchemaViolationIsMalformed(t *testing.T) {
	schema := &llm.Schema{
		Name: "gateway-test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
			},
			"required": []any{"title"},
		},
	}

	g := New(llm.NewMockProvider(reply(`{"name":"x"}`), reply(`{"title":"ok"}`)))

	var out map[string]any
	err := g.Generate(context.Background(), Call{Prompt: "p", Schema: schema}, &out)
	assert.ErrorIs(t, err, ErrGenerationMalformed)

	err = g.Generate(context.Background(), Call{Prompt: "p", Schema: schema}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out["title"])
}

func TestGenerate_SendsPromptAndPurpose(t *testing.T) {
	var purpose string
	mock := llm.NewMockProviderFunc(func(req llm.Request) llm.MockResponse {
		return reply(`{}`)
	})
	p := &purposeRecorder{Provider: mock, seen: &purpose}

	var out map[string]any
	err := New(p).Generate(context.Background(), Call{
		Purpose:   llm.PurposeStudyPlan,
		System:    "sys",
		Prompt:    "hello",
		MaxTokens: 321,
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, llm.PurposeStudyPlan, purpose)
	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "sys", reqs[0].System)
	assert.Equal(t, "hello", reqs[0].Messages[0].Content)
	assert.Equal(t, 321, reqs[0].MaxTokens)
}

type purposeRecorder struct {
	llm.Provider
	seen *string
}

func (p *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	*p.seen = llm.PurposeFrom(ctx)
	return p.Provider.Generate(ctx, req)
}

func TestSalvage(t *testing.T) {
	tests := []struct {
		in   string
		open byte
		want string
	}{
		{`abc [1,2] def`, '[', `[1,2]`},
		{`x {"a":{"b":[1]}} y {"c":2}`, '{', `{"a":{"b":[1]}}`},
		{`{"a":"\"}"} tail`, '{', `{"a":"\"}"}`},
		{`[1, {]`, '[', ``},
		{`nothing here`, '{', ``},
		{`[} [3]`, '[', `[3]`},
	}
	for _, tt := range tests {
		got := salvage([]byte(tt.in), tt.open)
		assert.Equal(t, tt.want, string(got), "salvage(%q)", tt.in)
	}
}

func TestUnwrapArray(t *testing.T) {
	assert.Equal(t, `[1]`, string(unwrapArray([]byte(`{"items":[1],"note":"x"}`))))
	assert.Nil(t, unwrapArray([]byte(`{"a":[1],"b":[2]}`)))
	assert.Nil(t, unwrapArray([]byte(`{"a":1}`)))
}
