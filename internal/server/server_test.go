package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/assessment"
	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/questiongen"
	"github.com/abhisek/skilleval/internal/recommend"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/store/storetest"
)

const (
	secret = "test-secret"
	issuer = "skilleval-test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// respond answers question batches with a valid tier batch and lets the
// recommendation calls fall back.
func respond(req llm.Request) llm.MockResponse {
	if req.Schema != questiongen.BatchSchema {
		return llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}
	}
	items := make([]map[string]any, 10)
	for i := range items {
		items[i] = map[string]any{
			"question":      fmt.Sprintf("q%d?", i),
			"options":       []string{"yes", "no"},
			"correctAnswer": "yes",
			"conceptTag":    "golang",
			"explanation":   "",
		}
	}
	data, _ := json.Marshal(items)
	return llm.MockResponse{Content: data}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := storetest.Open(t)
	gw := gateway.New(llm.NewMockProviderFunc(respond))
	cat := catalog.New(st.ConceptRepo(), logger.Nop())
	svc := assessment.New(assessment.Deps{
		Catalog:     cat,
		Attempts:    st.AttemptRepo(),
		Generator:   questiongen.New(gw, questiongen.DefaultConfig(), logger.Nop()),
		Recommender: recommend.New(gw, recommend.DefaultConfig(), logger.Nop()),
	}, assessment.DefaultConfig())

	return New(Config{JWTSecret: secret, Issuer: issuer, Mode: gin.TestMode}, Deps{
		Assessments: svc,
		Concepts:    cat,
		Reports:     reporting.New(st.StatsRepo()),
		DB:          st,
	})
}

func token(t *testing.T, sub string, roles ...string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	s := newTestServer(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "u1", Issuer: issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	expiredTok, _ := expired.SignedString([]byte(secret))

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "u1", Issuer: issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	wrongKeyTok, _ := wrongKey.SignedString([]byte("other"))

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "u1", Issuer: "elsewhere", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	wrongIssuerTok, _ := wrongIssuer.SignedString([]byte(secret))

	for name, tok := range map[string]string{
		"missing":      "",
		"garbage":      "not.a.jwt",
		"expired":      expiredTok,
		"wrong key":    wrongKeyTok,
		"wrong issuer": wrongIssuerTok,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/api/v1/concepts", tok, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode[ErrorEnvelope](t, rec)
			assert.Equal(t, "unauthorized", env.Error.Code)
		})
	}
}

func TestAdminRoutes_RequireRole(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/admin/assessments/stats", token(t, "u1"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/admin/assessments/stats", token(t, "ops", "admin"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[reporting.Stats](t, rec)
	assert.Len(t, st.Bands, 4)
}

func TestRegisterAndListConcepts(t *testing.T) {
	s := newTestServer(t)
	admin := token(t, "ops", "admin")

	rec := do(t, s, http.MethodPut, "/api/v1/admin/concepts/golang", admin, map[string]string{"description": "The Go language"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodPut, "/api/v1/admin/concepts/Bad%20Key", admin, map[string]string{"description": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_concept", decode[ErrorEnvelope](t, rec).Error.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/concepts", token(t, "u1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Concepts []catalog.Entry `json:"concepts"`
	}](t, rec)
	require.Len(t, body.Concepts, 1)
	assert.Equal(t, "golang", body.Concepts[0].Key)
	assert.Equal(t, 30, body.Concepts[0].QuestionCount)
}

func TestAssessmentFlow(t *testing.T) {
	s := newTestServer(t)
	user := token(t, "u1")

	rec := do(t, s, http.MethodGet, "/api/v1/assessments/active", user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":null}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/v1/assessments", user, map[string]string{"concept": "golang"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	view := decode[assessment.AttemptView](t, rec)
	require.Len(t, view.Questions, 30)
	assert.Equal(t, 45, view.TimeLimitMinutes)
	assert.NotContains(t, rec.Body.String(), "correctAnswer")

	rec = do(t, s, http.MethodGet, "/api/v1/assessments/active", user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.AttemptID.String())

	answers := make([]map[string]any, len(view.Questions))
	for i, q := range view.Questions {
		answers[i] = map[string]any{"questionId": q.ID, "userAnswer": "yes", "timeSpent": 5}
	}
	submitPath := "/api/v1/assessments/" + view.AttemptID.String() + "/submit"

	rec = do(t, s, http.MethodPost, submitPath, token(t, "u2"), map[string]any{"answers": answers})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, submitPath, user, map[string]any{"answers": answers})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[assessment.SubmitResult](t, rec)
	assert.Equal(t, 30, res.TotalScore)
	assert.Equal(t, 100, res.Percentage)
	assert.True(t, res.Resources.Fallback)

	rec = do(t, s, http.MethodPost, submitPath, user, map[string]any{"answers": answers})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_completed", decode[ErrorEnvelope](t, rec).Error.Code)

	rec = do(t, s, http.MethodPost, submitPath, user, map[string]any{"answers": []any{}})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_completed", decode[ErrorEnvelope](t, rec).Error.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/assessments/"+view.AttemptID.String(), user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"studyRecommendations":null`)
	full := decode[assessment.Result](t, rec)
	assert.Len(t, full.Review, 30)

	rec = do(t, s, http.MethodGet, "/api/v1/assessments", user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Results []assessment.Summary `json:"results"`
	}](t, rec)
	assert.Len(t, list.Results, 1)

	rec = do(t, s, http.MethodGet, "/api/v1/admin/assessments/stats", token(t, "ops", "admin"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	st := decode[reporting.Stats](t, rec)
	assert.Equal(t, 1, st.Overview.CompletedAttempts)
	assert.Equal(t, 100.0, st.Overview.CompletionRate)
	require.Len(t, st.Concepts, 1)
	assert.Equal(t, "golang", st.Concepts[0].Concept)
	assert.Equal(t, 100.0, st.Concepts[0].MeanPercentage)
	require.Len(t, st.Top, 1)
	assert.Equal(t, view.AttemptID, st.Top[0].AttemptID)
}

func TestSubmit_BadRequests(t *testing.T) {
	s := newTestServer(t)
	user := token(t, "u1")

	rec := do(t, s, http.MethodPost, "/api/v1/assessments/not-a-uuid/submit", user, map[string]any{"answers": []any{}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/assessments", user, map[string]string{"concept": "golang"})
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decode[assessment.AttemptView](t, rec)
	path := "/api/v1/assessments/" + view.AttemptID.String() + "/submit"

	rec = do(t, s, http.MethodPost, path, user, map[string]any{"answers": []any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_answers", decode[ErrorEnvelope](t, rec).Error.Code)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+user)
	raw := httptest.NewRecorder()
	s.Engine.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/assessments/"+view.AttemptID.String(), user, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "not_completed", decode[ErrorEnvelope](t, rec).Error.Code)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{assessment.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrap: %w", catalog.ErrConceptNotFound), http.StatusNotFound},
		{assessment.ErrAlreadyCompleted, http.StatusConflict},
		{assessment.ErrInvalidAnswers, http.StatusBadRequest},
		{assessment.ErrInvalidConcept, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", questiongen.ErrTestGenerationFailed, gateway.ErrGenerationMalformed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
	}
}

func TestStart_GenerationFailureIs502(t *testing.T) {
	st := storetest.Open(t)
	gw := gateway.New(llm.NewMockProviderFunc(func(llm.Request) llm.MockResponse {
		return llm.MockResponse{Content: json.RawMessage("not json")}
	}))
	cat := catalog.New(st.ConceptRepo(), logger.Nop())
	svc := assessment.New(assessment.Deps{
		Catalog:     cat,
		Attempts:    st.AttemptRepo(),
		Generator:   questiongen.New(gw, questiongen.DefaultConfig(), logger.Nop()),
		Recommender: recommend.New(gw, recommend.DefaultConfig(), logger.Nop()),
	}, assessment.DefaultConfig())
	s := New(Config{JWTSecret: secret, Issuer: issuer}, Deps{Assessments: svc, Concepts: cat})

	rec := do(t, s, http.MethodPost, "/api/v1/assessments", token(t, "u1"), map[string]string{"concept": "golang"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "generation_failed", decode[ErrorEnvelope](t, rec).Error.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/assessments/active", token(t, "u1"), nil)
	assert.JSONEq(t, `{"active":null}`, rec.Body.String())
}
