package reporting

import "github.com/abhisek/skilleval/internal/store"

// ReviewItem is one question of a completed attempt joined to its answer.
type ReviewItem struct {
	QuestionID    int              `json:"questionId"`
	Position      int              `json:"position"`
	Question      string           `json:"question"`
	Options       []string         `json:"options"`
	Difficulty    store.Difficulty `json:"difficulty"`
	ConceptTag    string           `json:"conceptTag"`
	Answered      bool             `json:"answered"`
	UserAnswer    string           `json:"userAnswer"`
	IsCorrect     bool             `json:"isCorrect"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   string           `json:"explanation"`
	TimeSpent     *int             `json:"timeSpent"`
}

// Review joins answers to their questions in question order. Questions
// without an answer are kept and marked unanswered.
func Review(questions []store.Question, answers []store.Answer) []ReviewItem {
	byQuestion := make(map[int]store.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	out := make([]ReviewItem, len(questions))
	for i, q := range questions {
		item := ReviewItem{
			QuestionID:    q.ID,
			Position:      q.Position,
			Question:      q.Text,
			Options:       q.Options,
			Difficulty:    q.Difficulty,
			ConceptTag:    q.ConceptTag,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if a, ok := byQuestion[q.ID]; ok {
			item.Answered = true
			item.UserAnswer = a.UserAnswer
			item.IsCorrect = a.IsCorrect
			item.TimeSpent = a.TimeSpent
		}
		out[i] = item
	}
	return out
}
