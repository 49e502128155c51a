package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilleval/ent"
	"github.com/abhisek/skilleval/ent/concept"
)

// conceptRepo implements ConceptRepo using the ent client.
type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) Upsert(ctx context.Context, key, description string, active bool) (*Concept, error) {
	c, err := r.upsert(ctx, key, description, active)
	if ent.IsConstraintError(err) {
		// A concurrent registration won the insert; update its row.
		c, err = r.upsert(ctx, key, description, active)
	}
	if err != nil {
		return nil, err
	}
	return entConceptToConcept(c), nil
}

func (r *conceptRepo) upsert(ctx context.Context, key, description string, active bool) (*ent.Concept, error) {
	existing, err := r.client.Concept.Query().
		Where(concept.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		c, err := r.client.Concept.Create().
			SetKey(key).
			SetDescription(description).
			SetActive(active).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("create concept %q: %w", key, err)
		}
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("query concept %q: %w", key, err)
	}

	if existing.Description == description && existing.Active == active {
		return existing, nil
	}
	c, err := existing.Update().
		SetDescription(description).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update concept %q: %w", key, err)
	}
	return c, nil
}

func (r *conceptRepo) Get(ctx context.Context, key string) (*Concept, error) {
	c, err := r.client.Concept.Query().
		Where(concept.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query concept %q: %w", key, err)
	}
	return entConceptToConcept(c), nil
}

func (r *conceptRepo) List(ctx context.Context, includeInactive bool) ([]Concept, error) {
	q := r.client.Concept.Query().Order(ent.Asc(concept.FieldKey))
	if !includeInactive {
		q = q.Where(concept.Active(true))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list concepts: %w", err)
	}
	out := make([]Concept, len(rows))
	for i, c := range rows {
		out[i] = *entConceptToConcept(c)
	}
	return out, nil
}

func entConceptToConcept(c *ent.Concept) *Concept {
	return &Concept{
		ID:          c.ID,
		Key:         c.Key,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
