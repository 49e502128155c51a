package recommend

import "github.com/abhisek/skilleval/internal/grading"

// Input is the context both generators receive.
type Input struct {
	ConceptKey string
	WeakAreas  []string
	Band       grading.Band
	Percentage int
	Incorrect  []grading.Incorrect
}

// Resource is one recommended learning resource.
type Resource struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	Priority       string `json:"priority"`
	EstimatedTime  string `json:"estimatedTime"`
	Difficulty     string `json:"difficulty"`
	TargetWeakness string `json:"targetWeakness"`
}

// StudyPlan splits remediation into three horizons.
type StudyPlan struct {
	Immediate string `json:"immediate"`
	ShortTerm string `json:"shortTerm"`
	LongTerm  string `json:"longTerm"`
}

// Resources is the personalized resource payload.
type Resources struct {
	Resources     []Resource `json:"resources"`
	StudyPlan     StudyPlan  `json:"studyPlan"`
	PracticeAreas []string   `json:"practiceAreas"`

	// Fallback is set when the payload was synthesized locally.
	Fallback bool `json:"fallback"`
}

// PriorityArea is one area to work on, with urgency.
type PriorityArea struct {
	Area    string `json:"area"`
	Urgency string `json:"urgency"`
	Reason  string `json:"reason"`
}

// PracticeRecommendation is one kind of practice to do.
type PracticeRecommendation struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// WeaknessBreakdown classifies weaknesses.
type WeaknessBreakdown struct {
	Conceptual   []string `json:"conceptual"`
	Practical    []string `json:"practical"`
	Foundational []string `json:"foundational"`
}

// StudyRecommendations is the priority and strategy payload.
type StudyRecommendations struct {
	PriorityAreas           []PriorityArea           `json:"priorityAreas"`
	StudyStrategy           string                   `json:"studyStrategy"`
	PracticeRecommendations []PracticeRecommendation `json:"practiceRecommendations"`
	WeaknessBreakdown       WeaknessBreakdown        `json:"weaknessBreakdown"`
}
