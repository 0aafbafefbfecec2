package dto

import (
	"errors"

	"quiz-show/internal/domain"
	"quiz-show/internal/session"
)

func NewVerdictResponse(v domain.EvaluationVerdict) VerdictResponse {
	return VerdictResponse{Correct: v.Correct, Feedback: v.Feedback, Fallback: v.Fallback}
}

// NewSessionResponse maps a snapshot to its wire form.
func NewSessionResponse(sessionID string, snap session.Snapshot) SessionResponse {
	resp := SessionResponse{
		SessionID:      sessionID,
		State:          string(snap.State),
		Busy:           snap.Busy,
		Topic:          snap.Topic,
		Difficulty:     string(snap.Difficulty),
		TotalQuestions: snap.TotalQuestions,
		CurrentIndex:   snap.CurrentIndex,
		UserScore:      snap.UserScore,
		ModelScore:     snap.ModelScore,
	}
	if snap.CurrentQuestion != nil {
		resp.CurrentQuestion = &QuestionResponse{
			Number: snap.CurrentIndex + 1,
			Text:   snap.CurrentQuestion.Text,
		}
	}
	if snap.LastVerdict != nil {
		v := NewVerdictResponse(*snap.LastVerdict)
		resp.LastVerdict = &v
	}
	if snap.GenerationError != nil {
		resp.GenerationError = newGenerationErrorResponse(snap.GenerationError)
	}
	if snap.State == session.StateCompleted {
		resp.Outcome = string(snap.Outcome())
	}
	return resp
}

func newGenerationErrorResponse(err error) *GenerationErrorResponse {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		return &GenerationErrorResponse{Code: string(domain.CodeInternal), Message: err.Error()}
	}
	out := &GenerationErrorResponse{Code: string(domainErr.Code), Message: domainErr.Message}
	if snippet, ok := domainErr.Context["raw_snippet"].(string); ok {
		out.RawSnippet = snippet
	}
	return out
}
