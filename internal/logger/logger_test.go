package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_RedactsSecretKeys(t *testing.T) {
	got := sanitize([]any{"provider", "openai", "api_key", "sk-123", "Authorization", "Bearer x", "latency_ms", 12})

	assert.Equal(t, "openai", got[1])
	assert.Equal(t, "[REDACTED]", got[3])
	assert.Equal(t, "[REDACTED]", got[5])
	assert.Equal(t, 12, got[7])
}

func TestSanitize_OddLengthKeepsTrailingKey(t *testing.T) {
	got := sanitize([]any{"purpose", "resources", "dangling"})
	assert.Equal(t, []any{"purpose", "resources", "dangling"}, got)
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	in := []any{"token", "abc"}
	_ = sanitize(in)
	assert.Equal(t, "abc", in[1])
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode)
		assert.NoError(t, err, mode)
		l.Info("hello", "mode", mode)
	}
}
