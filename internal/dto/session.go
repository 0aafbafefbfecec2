package dto

// StartQuizRequest starts (or restarts) the quiz of a session.
// @Description Quiz configuration chosen by the user
type StartQuizRequest struct {
	Topic         string `json:"topic" example:"Roman history"`
	Difficulty    string `json:"difficulty" example:"Medium"`
	QuestionCount int    `json:"question_count" example:"5"`
}

// SubmitAnswerRequest carries the user's free-text answer to the current question.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"Julius Caesar"`
}

// CreateSessionResponse is returned when a new session is opened.
type CreateSessionResponse struct {
	SessionID string          `json:"session_id"`
	Session   SessionResponse `json:"session"`
}

// QuestionResponse is the question currently shown to the user.
// The reference answer is never exposed before grading.
type QuestionResponse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// VerdictResponse is the grading result for the last submitted answer.
type VerdictResponse struct {
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback"`
	Fallback bool   `json:"fallback"`
}

// GenerationErrorResponse explains why a quiz ended up empty.
type GenerationErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RawSnippet string `json:"raw_snippet,omitempty"`
}

// SessionResponse is the render view of a session.
// @Description Quiz session state
type SessionResponse struct {
	SessionID       string                   `json:"session_id"`
	State           string                   `json:"state" example:"in_progress"`
	Busy            bool                     `json:"busy"`
	Topic           string                   `json:"topic,omitempty"`
	Difficulty      string                   `json:"difficulty,omitempty"`
	TotalQuestions  int                      `json:"total_questions"`
	CurrentIndex    int                      `json:"current_index"`
	CurrentQuestion *QuestionResponse        `json:"current_question,omitempty"`
	UserScore       int                      `json:"user_score"`
	ModelScore      int                      `json:"model_score"`
	LastVerdict     *VerdictResponse         `json:"last_verdict,omitempty"`
	GenerationError *GenerationErrorResponse `json:"generation_error,omitempty"`
	Outcome         string                   `json:"outcome,omitempty" example:"user_wins"`
}

// SubmitAnswerResponse pairs the verdict with the session after the answer was scored.
type SubmitAnswerResponse struct {
	Verdict VerdictResponse `json:"verdict"`
	Session SessionResponse `json:"session"`
}

// HealthResponse reports liveness of the API and its optional cache.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Cache  string `json:"cache" example:"disabled"`
}
