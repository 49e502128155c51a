// Package catalog holds the set of assessable concepts.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store"
)

// QuestionsPerAssessment is the fixed size of every generated assessment.
const QuestionsPerAssessment = 30

var (
	// ErrInvalidConcept is returned for keys that are not well formed.
	ErrInvalidConcept = errors.New("invalid concept key")

	// ErrConceptNotFound is returned for unknown or retired concepts.
	ErrConceptNotFound = errors.New("concept not found")
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9+#._-]{0,63}$`)

// Entry is a concept as presented to callers.
type Entry struct {
	Key           string `json:"key" yaml:"key"`
	Description   string `json:"description" yaml:"description"`
	QuestionCount int    `json:"questionCount" yaml:"-"`
}

// Catalog registers and looks up concepts.
type Catalog struct {
	repo store.ConceptRepo
	log  *logger.Logger
}

// New creates a Catalog over repo.
func New(repo store.ConceptRepo, log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.Nop()
	}
	return &Catalog{repo: repo, log: log}
}

// NormalizeKey lowercases and trims key and checks its format.
func NormalizeKey(key string) (string, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if !keyPattern.MatchString(k) {
		return "", fmt.Errorf("%w: %q", ErrInvalidConcept, key)
	}
	return k, nil
}

// Register creates the concept or updates its description in place and
// marks it active. Registering the same key twice leaves one concept.
func (c *Catalog) Register(ctx context.Context, key, description string) (*store.Concept, error) {
	return c.set(ctx, key, description, true)
}

// Retire marks a concept inactive. Retired concepts are hidden from
// listings and cannot be started.
func (c *Catalog) Retire(ctx context.Context, key string) error {
	k, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	existing, err := c.repo.Get(ctx, k)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrConceptNotFound, k)
		}
		return err
	}
	_, err = c.repo.Upsert(ctx, k, existing.Description, false)
	return err
}

func (c *Catalog) set(ctx context.Context, key, description string, active bool) (*store.Concept, error) {
	k, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = genericDescription(k)
	}
	concept, err := c.repo.Upsert(ctx, k, description, active)
	if err != nil {
		return nil, fmt.Errorf("register concept %s: %w", k, err)
	}
	return concept, nil
}

// ListActive returns the active concepts ordered by key.
func (c *Catalog) ListActive(ctx context.Context) ([]Entry, error) {
	concepts, err := c.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(concepts))
	for i, concept := range concepts {
		out[i] = toEntry(concept)
	}
	return out, nil
}

// Get returns one active concept.
func (c *Catalog) Get(ctx context.Context, key string) (*store.Concept, error) {
	k, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	concept, err := c.repo.Get(ctx, k)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrConceptNotFound, k)
		}
		return nil, err
	}
	if !concept.Active {
		return nil, fmt.Errorf("%w: %s is retired", ErrConceptNotFound, k)
	}
	return concept, nil
}

// Ensure returns the concept for key, registering it with a generic
// description on first use. Retired concepts are not revived.
func (c *Catalog) Ensure(ctx context.Context, key string) (*store.Concept, error) {
	k, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	concept, err := c.repo.Get(ctx, k)
	switch {
	case err == nil:
		if !concept.Active {
			return nil, fmt.Errorf("%w: %s is retired", ErrConceptNotFound, k)
		}
		return concept, nil
	case errors.Is(err, store.ErrNotFound):
		c.log.Info("registering concept on first use", "concept", k)
		return c.set(ctx, k, "", true)
	default:
		return nil, err
	}
}

func toEntry(c store.Concept) Entry {
	return Entry{
		Key:           c.Key,
		Description:   c.Description,
		QuestionCount: QuestionsPerAssessment,
	}
}

func genericDescription(key string) string {
	return fmt.Sprintf("Assessment of %s fundamentals and applied problem solving.", key)
}
