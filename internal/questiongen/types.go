package questiongen

import "github.com/abhisek/skilleval/internal/store"

// GenerateInput holds the context for one tier batch.
type GenerateInput struct {
	// ConceptKey is the subject, e.g. "python".
	ConceptKey string

	// Description is the human description of the subject. Optional.
	Description string

	// Difficulty is the tier of the batch.
	Difficulty store.Difficulty

	// Count is the number of questions requested.
	Count int
}

// Question is one generated question before it is stored.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    store.Difficulty
	ConceptTag    string
	Explanation   string
}

// questionOutput is one raw item of a generated batch.
type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	ConceptTag    string   `json:"conceptTag"`
	Explanation   string   `json:"explanation"`
}
