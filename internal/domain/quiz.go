package domain

import (
	"fmt"
	"strings"
)

const (
	MinQuestionCount = 1
	MaxQuestionCount = 30
)

// Difficulty is the difficulty level requested for a generated quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty converts a user supplied level into a Difficulty.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", NewInvalidDifficultyError(s)
}

// Lower returns the lower-cased level used when phrasing prompts.
func (d Difficulty) Lower() string {
	return strings.ToLower(string(d))
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuizQuestion is a single generated question with its reference answer.
type QuizQuestion struct {
	Text            string `json:"text"`
	ReferenceAnswer string `json:"reference_answer"`
}

// QuizConfiguration describes one "start quiz" request.
type QuizConfiguration struct {
	Topic         string
	Difficulty    Difficulty
	QuestionCount int
}

// NewQuizConfiguration builds a validated configuration.
// The topic is passed through as-is; its content is never inspected.
func NewQuizConfiguration(topic string, difficulty Difficulty, count int) (QuizConfiguration, error) {
	cfg := QuizConfiguration{
		Topic:         topic,
		Difficulty:    difficulty,
		QuestionCount: count,
	}
	if err := cfg.Validate(); err != nil {
		return QuizConfiguration{}, err
	}
	return cfg, nil
}

// Validate checks the difficulty and question count bounds.
func (c QuizConfiguration) Validate() error {
	if !c.Difficulty.Valid() {
		return NewInvalidDifficultyError(string(c.Difficulty))
	}
	if c.QuestionCount < MinQuestionCount || c.QuestionCount > MaxQuestionCount {
		return NewInvalidInputError(fmt.Sprintf("question count must be between %d and %d, got %d",
			MinQuestionCount, MaxQuestionCount, c.QuestionCount))
	}
	return nil
}

// EvaluationVerdict is the grading outcome of one submitted answer.
type EvaluationVerdict struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	// Fallback is set when the verdict was computed locally instead of by the model.
	Fallback bool `json:"fallback"`
}
