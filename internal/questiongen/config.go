package questiongen

// Config controls the behavior of the Pipeline.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// question. The first failure fails the whole set.
	Validators []Validator

	// PerTier is the number of questions per difficulty tier.
	PerTier int

	// MaxTokens is the token budget of one tier batch.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerInOptionsValidator{},
		},
		PerTier:     10,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
