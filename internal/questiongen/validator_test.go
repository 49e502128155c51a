package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/skilleval/internal/store"
)

func validQuestion() *Question {
	return &Question{
		Text:          "Which keyword declares a constant in Go?",
		Options:       []string{"var", "const", "let", "static"},
		CorrectAnswer: "const",
		Difficulty:    store.DifficultyEasy,
		ConceptTag:    "golang",
		Explanation:   "const declares compile-time constants.",
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Index: 3, Message: "options are empty"}
	expected := `validator "structural": question 3: options are empty`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestStructural(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "  " }, true},
		{"long text", func(q *Question) { q.Text = strings.Repeat("a", 1001) }, true},
		{"no options", func(q *Question) { q.Options = nil }, true},
		{"blank option", func(q *Question) { q.Options = []string{"const", " "} }, true},
		{"empty answer", func(q *Question) { q.CorrectAnswer = "" }, true},
		{"single option", func(q *Question) { q.Options = []string{"const"} }, false},
		{"unknown tier", func(q *Question) { q.Difficulty = "EXPERT" }, true},
		{"empty explanation allowed", func(q *Question) { q.Explanation = "" }, false},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Validator != "structural" {
				t.Errorf("validator = %q, want structural", err.Validator)
			}
		})
	}
}

func TestAnswerInOptions(t *testing.T) {
	v := &AnswerInOptionsValidator{}

	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	q := validQuestion()
	q.CorrectAnswer = "constant"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for answer outside options")
	}

	q = validQuestion()
	q.CorrectAnswer = "Const"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("expected error for case mismatch")
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "answer-in-options"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
	if cfg.PerTier != 10 {
		t.Errorf("expected PerTier 10, got %d", cfg.PerTier)
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		ConceptKey:  "python",
		Description: "Python basics",
		Difficulty:  store.DifficultyHard,
		Count:       10,
	})

	for _, want := range []string{
		"Subject: python",
		"Description: Python basics",
		"Difficulty: HARD",
		"Number of questions: 10",
		"exactly 10 HARD questions about python",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	msg = buildUserMessage(GenerateInput{ConceptKey: "go", Difficulty: store.DifficultyEasy, Count: 10})
	if strings.Contains(msg, "Description:") {
		t.Error("empty description should be omitted")
	}
}
