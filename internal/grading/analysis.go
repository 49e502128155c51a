package grading

import (
	"math"
	"sort"

	"github.com/abhisek/skilleval/internal/store"
)

// Accuracy is correct over total for one slice of answers.
type Accuracy struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func (a *Accuracy) add(correct bool) {
	a.Total++
	if correct {
		a.Correct++
	}
	a.Percentage = math.Round(float64(a.Correct)*10000/float64(a.Total)) / 100
}

// TagAccuracy is the accuracy for one concept tag.
type TagAccuracy struct {
	ConceptTag string `json:"conceptTag"`
	Accuracy
}

// Analysis breaks stored answers down by tier and concept tag.
type Analysis struct {
	Tiers map[store.Difficulty]Accuracy `json:"tiers"`
	Tags  []TagAccuracy                 `json:"tags"`
}

// Analyze computes per-tier and per-tag accuracy. Tiers with no answers
// are present with zero totals; tags are ordered by ascending accuracy.
func Analyze(answers []store.Answer) Analysis {
	tiers := make(map[store.Difficulty]Accuracy, 3)
	for _, d := range store.Difficulties() {
		tiers[d] = Accuracy{}
	}
	tags := make(map[string]*TagAccuracy)
	var order []string

	for _, a := range answers {
		t := tiers[a.Difficulty]
		t.add(a.IsCorrect)
		tiers[a.Difficulty] = t

		ta, ok := tags[a.ConceptTag]
		if !ok {
			ta = &TagAccuracy{ConceptTag: a.ConceptTag}
			tags[a.ConceptTag] = ta
			order = append(order, a.ConceptTag)
		}
		ta.add(a.IsCorrect)
	}

	out := Analysis{Tiers: tiers, Tags: make([]TagAccuracy, 0, len(order))}
	for _, tag := range order {
		out.Tags = append(out.Tags, *tags[tag])
	}
	sort.SliceStable(out.Tags, func(i, j int) bool {
		return out.Tags[i].Percentage < out.Tags[j].Percentage
	})
	return out
}
