package coach

// Config controls the coach's LLM usage per operation class.
type Config struct {
	// MaxTokens is the response token budget for question and
	// perspective generation.
	MaxTokens int

	// Temperature for question and perspective generation (0.0-1.0).
	Temperature float64

	// ValidationMaxTokens is the budget for soundness reviews, which
	// return a small fixed shape.
	ValidationMaxTokens int

	// ValidationTemperature is kept low so reviews are near-deterministic.
	ValidationTemperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:             1500,
		Temperature:           0.7,
		ValidationMaxTokens:   512,
		ValidationTemperature: 0.3,
	}
}
