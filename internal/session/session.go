// Package session implements the per-user quiz state machine.
//
// A Session moves Idle -> InProgress|Empty on Start, InProgress -> InProgress
// or Completed on each Submit, and back to Idle from anywhere on Reset. At
// most one model round trip is outstanding per session.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"quiz-show/internal/domain"
	"quiz-show/internal/logger"

	"go.uber.org/zap"
)

// State is the lifecycle position of a session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateEmpty      State = "empty"
)

// Terminal reports whether no further submissions are possible without a reset.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateEmpty
}

// Session owns the questions, position, scores and last verdict of one quiz.
type Session struct {
	generator domain.QuizGenerator
	evaluator domain.AnswerEvaluator

	mu           sync.Mutex
	started      bool
	questions    []domain.QuizQuestion
	currentIndex int
	userScore    int
	modelScore   int
	lastVerdict  *domain.EvaluationVerdict
	topic        string
	difficulty   domain.Difficulty
	genErr       error

	// busy marks an outstanding model call; epoch invalidates it on Reset.
	busy     bool
	epoch    uint64
	lastUsed time.Time
}

// New returns an Idle session.
func New(generator domain.QuizGenerator, evaluator domain.AnswerEvaluator) *Session {
	return &Session{
		generator: generator,
		evaluator: evaluator,
		lastUsed:  time.Now(),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case !s.started:
		return StateIdle
	case len(s.questions) == 0:
		return StateEmpty
	case s.currentIndex >= len(s.questions):
		return StateCompleted
	default:
		return StateInProgress
	}
}

// Start generates a new quiz for cfg and replaces all quiz data wholesale.
//
// Generation failures are not returned: they leave the session Empty with
// the error retained for display. Only validation and busy errors are returned.
func (s *Session) Start(ctx context.Context, cfg domain.QuizConfiguration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.NewSessionBusyError()
	}
	s.busy = true
	epoch := s.epoch
	s.mu.Unlock()

	questions, genErr := s.generator.Generate(ctx, cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		logger.Get().Info("Discarding quiz generated for a session that was reset", zap.String("topic", cfg.Topic))
		return nil
	}
	s.busy = false
	s.lastUsed = time.Now()

	if genErr != nil {
		logger.Get().Warn("Quiz generation failed, session has no questions",
			zap.String("topic", cfg.Topic),
			zap.Error(genErr))
		questions = nil
	}

	s.started = true
	s.questions = append([]domain.QuizQuestion(nil), questions...)
	s.currentIndex = 0
	s.userScore = 0
	s.modelScore = 0
	s.lastVerdict = nil
	s.topic = cfg.Topic
	s.difficulty = cfg.Difficulty
	s.genErr = genErr
	return nil
}

// Submit grades answer against the current question and advances by one.
// It is rejected without any mutation unless the session is InProgress.
func (s *Session) Submit(ctx context.Context, answer string) (domain.EvaluationVerdict, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.EvaluationVerdict{}, domain.NewSessionBusyError()
	}
	if state := s.stateLocked(); state != StateInProgress {
		s.mu.Unlock()
		return domain.EvaluationVerdict{}, domain.NewInvalidStateError("submit an answer", string(state))
	}
	question := s.questions[s.currentIndex]
	s.busy = true
	epoch := s.epoch
	s.mu.Unlock()

	verdict := s.evaluator.Evaluate(ctx, question.Text, question.ReferenceAnswer, strings.TrimSpace(answer))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		logger.Get().Info("Discarding verdict for a session that was reset")
		return verdict, domain.NewInvalidStateError("submit an answer", string(StateIdle))
	}
	s.busy = false
	s.lastUsed = time.Now()

	s.lastVerdict = &verdict
	if verdict.Correct {
		s.userScore++
	} else {
		s.modelScore++
	}
	s.currentIndex++
	return verdict, nil
}

// Reset discards all quiz data and returns to Idle. An outstanding model
// call is abandoned; its result is ignored when it arrives.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.busy = false
	s.started = false
	s.questions = nil
	s.currentIndex = 0
	s.userScore = 0
	s.modelScore = 0
	s.lastVerdict = nil
	s.topic = ""
	s.difficulty = ""
	s.genErr = nil
	s.lastUsed = time.Now()
}

// ClearVerdict drops the last verdict once the driver has displayed it.
func (s *Session) ClearVerdict() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastVerdict = nil
}

// LastUsed reports when the session last changed state.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Busy reports whether a model call is outstanding.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
