package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skilleval/ent"
	"github.com/abhisek/skilleval/ent/attempt"
	"github.com/abhisek/skilleval/ent/concept"
)

// statsRepo implements StatsRepo with ent aggregate queries.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Counts(ctx context.Context) (int, int, error) {
	total, err := r.client.Attempt.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	completed, err := r.client.Attempt.Query().
		Where(attempt.Completed(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count completed attempts: %w", err)
	}
	return total, completed, nil
}

func (r *statsRepo) BandCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Band  string `json:"band"`
		Count int    `json:"count"`
	}
	err := r.client.Attempt.Query().
		Where(attempt.Completed(true)).
		GroupBy(attempt.FieldBand).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("group attempts by band: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Band] = row.Count
	}
	return out, nil
}

func (r *statsRepo) ConceptStats(ctx context.Context) ([]ConceptStat, error) {
	var all []struct {
		ConceptID int `json:"concept_id"`
		Count     int `json:"count"`
	}
	err := r.client.Attempt.Query().
		GroupBy(attempt.FieldConceptID).
		Aggregate(ent.Count()).
		Scan(ctx, &all)
	if err != nil {
		return nil, fmt.Errorf("group attempts by concept: %w", err)
	}

	var done []struct {
		ConceptID int     `json:"concept_id"`
		Count     int     `json:"count"`
		Mean      float64 `json:"mean"`
	}
	err = r.client.Attempt.Query().
		Where(attempt.Completed(true)).
		GroupBy(attempt.FieldConceptID).
		Aggregate(ent.Count(), ent.As(ent.Mean(attempt.FieldPercentage), "mean")).
		Scan(ctx, &done)
	if err != nil {
		return nil, fmt.Errorf("group completed attempts by concept: %w", err)
	}

	byID := make(map[int]*ConceptStat, len(all))
	ids := make([]int, 0, len(all))
	for _, row := range all {
		byID[row.ConceptID] = &ConceptStat{ConceptID: row.ConceptID, Attempts: row.Count}
		ids = append(ids, row.ConceptID)
	}
	for _, row := range done {
		st, ok := byID[row.ConceptID]
		if !ok {
			continue
		}
		st.Completed = row.Count
		st.MeanPercentage = row.Mean
	}

	concepts, err := r.client.Concept.Query().
		Where(concept.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	for _, c := range concepts {
		if st, ok := byID[c.ID]; ok {
			st.ConceptKey = c.Key
		}
	}

	out := make([]ConceptStat, 0, len(ids))
	for _, id := range ids {
		out = append(out, *byID[id])
	}
	return out, nil
}

func (r *statsRepo) RecentCompleted(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.Completed(true)).
		Order(ent.Desc(attempt.FieldCompletedAt)).
		Limit(limit).
		WithConcept().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return entAttemptsToAttempts(rows), nil
}

func (r *statsRepo) TopCompleted(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.Completed(true)).
		Order(ent.Desc(attempt.FieldPercentage), ent.Desc(attempt.FieldCompletedAt)).
		Limit(limit).
		WithConcept().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query top attempts: %w", err)
	}
	return entAttemptsToAttempts(rows), nil
}
