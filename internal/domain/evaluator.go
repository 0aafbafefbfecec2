package domain

import "context"

// AnswerEvaluator grades a free-text answer against the reference answer.
// Implementations never fail the caller; they always produce a verdict.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question, referenceAnswer, userAnswer string) EvaluationVerdict
}
