package validation

import (
	"strings"
	"unicode/utf8"

	"quiz-show/internal/domain"
	"quiz-show/internal/dto"
	"quiz-show/internal/util"
)

const MaxAnswerLength = 2000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID checks that id is a ULID as minted by the session service.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", id))
	}

	return errors
}

// ValidateStartRequest checks the request shape. The topic text itself is
// free-form and is not inspected beyond presence.
func (v *Validator) ValidateStartRequest(req *dto.StartQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Topic) == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}

	if strings.TrimSpace(req.Difficulty) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	} else if _, err := domain.ParseDifficulty(req.Difficulty); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}

	if req.QuestionCount < domain.MinQuestionCount || req.QuestionCount > domain.MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("question_count", req.QuestionCount,
			domain.MinQuestionCount, domain.MaxQuestionCount))
	}

	return errors
}

// ValidateSubmitAnswer rejects oversized answers. A blank answer is a pass
// and is graded like any other.
func (v *Validator) ValidateSubmitAnswer(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(req.Answer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", n, 0, MaxAnswerLength))
	}

	return errors
}
