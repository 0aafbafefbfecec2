package evaluator

import (
	"context"
	"fmt"
	"strings"

	"quiz-show/internal/domain"
	"quiz-show/internal/logger"
	"quiz-show/internal/parser"

	"go.uber.org/zap"
)

const gradingPrompt = `You are a quiz grader.
Question: "%s"
Correct answer: "%s"
User's answer: "%s"

Determine if the user's answer is correct (allow minor synonyms/casing), then provide a brief, friendly feedback message.
Output ONLY valid JSON in this exact shape, with no commentary before or after it:
{ "correct": true|false, "feedback": "..." }`

const correctFeedback = "Great job!"

// llmEvaluator implements domain.AnswerEvaluator
type llmEvaluator struct {
	client domain.LLMClient
}

// NewLLMEvaluator creates a new instance of llmEvaluator
func NewLLMEvaluator(client domain.LLMClient) domain.AnswerEvaluator {
	return &llmEvaluator{client: client}
}

// BuildPrompt renders the grading instruction.
func BuildPrompt(question, referenceAnswer, userAnswer string) string {
	return fmt.Sprintf(gradingPrompt, question, referenceAnswer, userAnswer)
}

type gradingResponse struct {
	Correct  *bool   `json:"correct"`
	Feedback *string `json:"feedback"`
}

// Evaluate grades userAnswer with one model call. Any client failure, parse
// failure or missing field falls back to Fallback.
func (e *llmEvaluator) Evaluate(ctx context.Context, question, referenceAnswer, userAnswer string) domain.EvaluationVerdict {
	l := logger.Get()
	l.Info("Evaluating answer with LLM", zap.String("question", question))

	raw, err := e.client.Complete(ctx, BuildPrompt(question, referenceAnswer, userAnswer))
	if err != nil {
		l.Warn("LLM evaluation unavailable, using local fallback", zap.Error(err))
		return Fallback(referenceAnswer, userAnswer)
	}
	l.Debug("Raw LLM response received", zap.String("raw_response", raw))

	resp, err := parser.Decode[gradingResponse](raw)
	if err != nil {
		l.Warn("Failed to parse LLM evaluation, using local fallback", zap.Error(err))
		return Fallback(referenceAnswer, userAnswer)
	}
	if resp.Correct == nil || resp.Feedback == nil {
		l.Warn("LLM evaluation is missing required fields, using local fallback",
			zap.Bool("has_correct", resp.Correct != nil),
			zap.Bool("has_feedback", resp.Feedback != nil))
		return Fallback(referenceAnswer, userAnswer)
	}

	l.Info("Successfully parsed LLM evaluation", zap.Bool("correct", *resp.Correct))
	return domain.EvaluationVerdict{
		Correct:  *resp.Correct,
		Feedback: *resp.Feedback,
	}
}

// Fallback grades locally by exact match after trimming and lower-casing.
func Fallback(referenceAnswer, userAnswer string) domain.EvaluationVerdict {
	if Normalize(userAnswer) == Normalize(referenceAnswer) {
		return domain.EvaluationVerdict{Correct: true, Feedback: correctFeedback, Fallback: true}
	}
	return domain.EvaluationVerdict{
		Correct:  false,
		Feedback: fmt.Sprintf("The correct answer was “%s.”", referenceAnswer),
		Fallback: true,
	}
}

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
