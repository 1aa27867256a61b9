package assessment

// Config holds generation limits for the assessment engine.
type Config struct {
	// QuestionMaxTokens bounds the question battery response.
	QuestionMaxTokens int
	// QuestionTemperature controls question variety.
	QuestionTemperature float64

	// EvalMaxTokens bounds the per-answer scoring response.
	EvalMaxTokens int
	// EvalTemperature keeps scoring near-deterministic.
	EvalTemperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		QuestionMaxTokens:   800,
		QuestionTemperature: 0.7,
		EvalMaxTokens:       200,
		EvalTemperature:     0.3,
	}
}
