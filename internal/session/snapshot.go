package session

import "quiz-show/internal/domain"

// Outcome names the winner of a completed quiz.
type Outcome string

const (
	OutcomeUserWins  Outcome = "user_wins"
	OutcomeModelWins Outcome = "model_wins"
)

// Snapshot is an immutable view of a session for rendering.
type Snapshot struct {
	State           State
	Busy            bool
	Topic           string
	Difficulty      domain.Difficulty
	TotalQuestions  int
	CurrentIndex    int
	CurrentQuestion *domain.QuizQuestion
	UserScore       int
	ModelScore      int
	LastVerdict     *domain.EvaluationVerdict
	GenerationError error
}

// Outcome is only meaningful once the quiz is Completed. Ties go to the model.
func (s Snapshot) Outcome() Outcome {
	if s.UserScore > s.ModelScore {
		return OutcomeUserWins
	}
	return OutcomeModelWins
}

// Snapshot copies the fields a driver needs for one render cycle.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:           s.stateLocked(),
		Busy:            s.busy,
		Topic:           s.topic,
		Difficulty:      s.difficulty,
		TotalQuestions:  len(s.questions),
		CurrentIndex:    s.currentIndex,
		UserScore:       s.userScore,
		ModelScore:      s.modelScore,
		GenerationError: s.genErr,
	}
	if snap.State == StateInProgress {
		q := s.questions[s.currentIndex]
		snap.CurrentQuestion = &q
	}
	if s.lastVerdict != nil {
		v := *s.lastVerdict
		snap.LastVerdict = &v
	}
	return snap
}
