package validation

import (
	"strings"
	"testing"

	"quiz-show/internal/domain"
	"quiz-show/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID("01HGZ8VNRYXS8QKNJV5GRWPWDQ"))

	errs := v.ValidateSessionID("")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateSessionID("abc")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateStartRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		req    dto.StartQuizRequest
		fields []string
	}{
		{"valid", dto.StartQuizRequest{Topic: "cats", Difficulty: "medium", QuestionCount: 5}, nil},
		{"max count", dto.StartQuizRequest{Topic: "cats", Difficulty: "Hard", QuestionCount: 30}, nil},
		{"blank topic", dto.StartQuizRequest{Topic: "  ", Difficulty: "Easy", QuestionCount: 1}, []string{"topic"}},
		{"missing difficulty", dto.StartQuizRequest{Topic: "cats", QuestionCount: 1}, []string{"difficulty"}},
		{"unknown difficulty", dto.StartQuizRequest{Topic: "cats", Difficulty: "Insane", QuestionCount: 1}, []string{"difficulty"}},
		{"zero count", dto.StartQuizRequest{Topic: "cats", Difficulty: "Easy"}, []string{"question_count"}},
		{"too many", dto.StartQuizRequest{Topic: "cats", Difficulty: "Easy", QuestionCount: 31}, []string{"question_count"}},
		{"everything wrong", dto.StartQuizRequest{QuestionCount: -1}, []string{"topic", "difficulty", "question_count"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateStartRequest(&tt.req)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidateSubmitAnswer(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSubmitAnswer(&dto.SubmitAnswerRequest{Answer: "Paris"}))

	assert.Empty(t, v.ValidateSubmitAnswer(&dto.SubmitAnswerRequest{Answer: ""}), "blank answer is a pass")
	assert.Empty(t, v.ValidateSubmitAnswer(&dto.SubmitAnswerRequest{Answer: " \t"}))

	errs := v.ValidateSubmitAnswer(&dto.SubmitAnswerRequest{Answer: strings.Repeat("é", MaxAnswerLength+1)})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)

	assert.Empty(t, v.ValidateSubmitAnswer(&dto.SubmitAnswerRequest{Answer: strings.Repeat("é", MaxAnswerLength)}))
}
