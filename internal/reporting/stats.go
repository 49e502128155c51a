// Package reporting assembles read-only views over stored attempts: the
// per-question review of one attempt and aggregates across all users.
package reporting

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skilleval/internal/grading"
	"github.com/abhisek/skilleval/internal/store"
)

// LeaderboardSize is the length of the recent and top attempt lists.
const LeaderboardSize = 10

// Overview counts attempts.
type Overview struct {
	TotalAttempts     int     `json:"totalAttempts"`
	CompletedAttempts int     `json:"completedAttempts"`
	CompletionRate    float64 `json:"completionRate"` // percent, two decimals
}

// BandCount is one bar of the band histogram.
type BandCount struct {
	Band  grading.Band `json:"band"`
	Count int          `json:"count"`
}

// ConceptSummary aggregates attempts for one concept.
type ConceptSummary struct {
	Concept        string  `json:"concept"`
	Attempts       int     `json:"attempts"`
	Completed      int     `json:"completed"`
	MeanPercentage float64 `json:"meanPercentage"`
}

// AttemptSummary is one row of the recent and top lists.
type AttemptSummary struct {
	AttemptID   uuid.UUID  `json:"attemptId"`
	UserID      string     `json:"userId"`
	Concept     string     `json:"concept"`
	TotalScore  int        `json:"totalScore"`
	Percentage  int        `json:"percentage"`
	Band        string     `json:"band"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Stats is the operator dashboard payload.
type Stats struct {
	Overview Overview         `json:"overview"`
	Bands    []BandCount      `json:"bands"`
	Concepts []ConceptSummary `json:"concepts"`
	Recent   []AttemptSummary `json:"recent"`
	Top      []AttemptSummary `json:"top"`
}

// Reporter computes aggregates.
type Reporter struct {
	repo store.StatsRepo
}

// New creates a Reporter.
func New(repo store.StatsRepo) *Reporter {
	return &Reporter{repo: repo}
}

// Stats returns aggregates across all users.
func (r *Reporter) Stats(ctx context.Context) (*Stats, error) {
	total, completed, err := r.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	bands, err := r.repo.BandCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("band histogram: %w", err)
	}
	concepts, err := r.repo.ConceptStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("concept stats: %w", err)
	}
	recent, err := r.repo.RecentCompleted(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	top, err := r.repo.TopCompleted(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("top attempts: %w", err)
	}

	return &Stats{
		Overview: Overview{
			TotalAttempts:     total,
			CompletedAttempts: completed,
			CompletionRate:    completionRate(total, completed),
		},
		Bands:    histogram(bands),
		Concepts: rankConcepts(concepts),
		Recent:   summarize(recent),
		Top:      summarize(top),
	}, nil
}

func completionRate(total, completed int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) * 100 / float64(total))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// histogram lists every band, best first, with zero for empty bands.
func histogram(counts map[string]int) []BandCount {
	bands := grading.Bands()
	out := make([]BandCount, len(bands))
	for i, b := range bands {
		out[i] = BandCount{Band: b, Count: counts[string(b)]}
	}
	return out
}

// rankConcepts orders concepts by ascending mean percentage so the
// hardest come first. Concepts with no completed attempts go last.
func rankConcepts(stats []store.ConceptStat) []ConceptSummary {
	out := make([]ConceptSummary, len(stats))
	for i, s := range stats {
		out[i] = ConceptSummary{
			Concept:        s.ConceptKey,
			Attempts:       s.Attempts,
			Completed:      s.Completed,
			MeanPercentage: round2(s.MeanPercentage),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Completed == 0) != (b.Completed == 0) {
			return b.Completed == 0
		}
		if a.MeanPercentage != b.MeanPercentage {
			return a.MeanPercentage < b.MeanPercentage
		}
		return a.Concept < b.Concept
	})
	return out
}

func summarize(attempts []store.Attempt) []AttemptSummary {
	out := make([]AttemptSummary, len(attempts))
	for i, a := range attempts {
		out[i] = AttemptSummary{
			AttemptID:   a.ID,
			UserID:      a.UserID,
			Concept:     a.ConceptKey,
			TotalScore:  a.TotalScore,
			Percentage:  a.Percentage,
			Band:        a.Band,
			CompletedAt: a.CompletedAt,
		}
	}
	return out
}
