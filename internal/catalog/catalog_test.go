package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store/storetest"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New(storetest.Open(t).ConceptRepo(), logger.Nop())
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"python", "python", false},
		{"  Python ", "python", false},
		{"c++", "c++", false},
		{"c#", "c#", false},
		{"node.js", "node.js", false},
		{"data-structures", "data-structures", false},
		{"", "", true},
		{"-leading-dash", "", true},
		{"has space", "", true},
		{"drop table;", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeKey(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConcept, "key %q", tt.in)
			continue
		}
		require.NoError(t, err, "key %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRegisterIsIdempotentUpsert(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	first, err := c.Register(ctx, "golang", "Go basics")
	require.NoError(t, err)
	second, err := c.Register(ctx, "GoLang", "Go in depth")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Go in depth", second.Description)

	list, err := c.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, QuestionsPerAssessment, list[0].QuestionCount)
}

func TestRegisterFillsGenericDescription(t *testing.T) {
	c := newCatalog(t)
	concept, err := c.Register(context.Background(), "rust", "")
	require.NoError(t, err)
	assert.Contains(t, concept.Description, "rust")
}

func TestRetireHidesConcept(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, err := c.Register(ctx, "cobol", "COBOL")
	require.NoError(t, err)
	require.NoError(t, c.Retire(ctx, "cobol"))

	list, err := c.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = c.Get(ctx, "cobol")
	assert.ErrorIs(t, err, ErrConceptNotFound)
	_, err = c.Ensure(ctx, "cobol")
	assert.ErrorIs(t, err, ErrConceptNotFound)

	// Registering again revives it.
	_, err = c.Register(ctx, "cobol", "COBOL again")
	require.NoError(t, err)
	_, err = c.Get(ctx, "cobol")
	assert.NoError(t, err)
}

func TestEnsureRegistersOnFirstUse(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "elixir")
	assert.ErrorIs(t, err, ErrConceptNotFound)

	first, err := c.Ensure(ctx, "elixir")
	require.NoError(t, err)
	second, err := c.Ensure(ctx, "elixir")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = c.Ensure(ctx, "not valid!")
	assert.ErrorIs(t, err, ErrInvalidConcept)
}

func TestSeedDefaults(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.SeedDefaults(ctx))
	require.NoError(t, c.SeedDefaults(ctx))

	list, err := c.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(Defaults))
}

func TestParseSeedAndApply(t *testing.T) {
	data := []byte(`
concepts:
  - key: golang
    description: Go concurrency and interfaces.
  - key: perl
    description: Perl one-liners.
    active: false
`)
	f, err := ParseSeed(data)
	require.NoError(t, err)
	require.Len(t, f.Concepts, 2)

	c := newCatalog(t)
	n, err := c.Seed(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := c.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "golang", list[0].Key)
	assert.Equal(t, "Go concurrency and interfaces.", list[0].Description)
}

func TestParseSeedRejectsBadKeys(t *testing.T) {
	_, err := ParseSeed([]byte("concepts:\n  - key: \"bad key\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConcept)

	_, err = ParseSeed([]byte("concepts: [unclosed"))
	assert.Error(t, err)
}
