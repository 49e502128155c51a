package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points discovery at an empty directory and clears provider keys.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, filepath.Join(dir, "skilleval", "skilleval.db"), cfg.Database.DSN)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, 45, cfg.Assessment.TimeLimit)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  addr: ":9090"
  cors_origins: ["https://app.example.com"]
database:
  driver: postgres
  dsn: postgres://localhost/skilleval
llm:
  provider: mock
  timeout: 15s
assessment:
  time_limit: 30
`), 0o600))

	t.Setenv("SKILLEVAL_SERVER_ADDR", ":7070")
	t.Setenv("SKILLEVAL_AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load(Options{File: file})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/skilleval", cfg.Database.DSN)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 30, cfg.Assessment.TimeLimit)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.NoError(t, cfg.ValidateServe())
}

func TestLoad_DiscoversFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skilleval.yaml"),
		[]byte("log:\n  mode: dev\n"), 0o600))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Log.Mode)
}

func TestLoad_DSNOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "other.db")

	cfg, err := Load(Options{DSN: path})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Database.DSN)
}

func TestLoad_ProviderKeyDiscovery(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLEVAL_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		opts Options
	}{
		{"missing explicit file", nil, Options{File: "/nonexistent/skilleval.yaml"}},
		{"unknown driver", map[string]string{"SKILLEVAL_DATABASE_DRIVER": "mysql"}, Options{}},
		{"postgres without dsn", map[string]string{"SKILLEVAL_DATABASE_DRIVER": "postgres"}, Options{}},
		{"unknown exporter", map[string]string{"SKILLEVAL_TRACING_EXPORTER": "zipkin"}, Options{}},
		{"sample ratio out of range", map[string]string{"SKILLEVAL_TRACING_SAMPLE_RATIO": "1.5"}, Options{}},
		{"non-positive time limit", map[string]string{"SKILLEVAL_ASSESSMENT_TIME_LIMIT": "0"}, Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestValidateServe_RequiresSecret(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLEVAL_LLM_PROVIDER", "mock")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.ValidateServe(), "jwt_secret")

	cfg.Auth.JWTSecret = "x"
	assert.NoError(t, cfg.ValidateServe())
}
