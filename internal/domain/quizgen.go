package domain

import "context"

// QuizGenerator produces an ordered question list for a configuration.
type QuizGenerator interface {
	// Generate returns the questions in model-provided order. Failures are
	// reported as DomainError with CodeClientUnavailable or CodeMalformedResponse.
	Generate(ctx context.Context, cfg QuizConfiguration) ([]QuizQuestion, error)
}

// LLMClient sends a single prompt to a language model and returns its raw text.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
