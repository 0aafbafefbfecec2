package service

import (
	"context"
	"sync"
	"time"

	"quiz-show/internal/domain"
	"quiz-show/internal/logger"
	"quiz-show/internal/session"
	"quiz-show/internal/util"

	"go.uber.org/zap"
)

// SessionService owns the quiz sessions of this process, one per user
// interaction, and dispatches driver events to them.
type SessionService interface {
	Create() (string, session.Snapshot)
	Get(sessionID string) (session.Snapshot, error)
	Start(ctx context.Context, sessionID string, cfg domain.QuizConfiguration) (session.Snapshot, error)
	Submit(ctx context.Context, sessionID string, answer string) (domain.EvaluationVerdict, session.Snapshot, error)
	Reset(sessionID string) (session.Snapshot, error)
	ClearVerdict(sessionID string) (session.Snapshot, error)
	Delete(sessionID string) error
	SweepIdle(maxIdle time.Duration) int
}

type sessionServiceImpl struct {
	generator domain.QuizGenerator
	evaluator domain.AnswerEvaluator

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewSessionService creates a SessionService whose sessions share generator
// and evaluator but no mutable state.
func NewSessionService(generator domain.QuizGenerator, evaluator domain.AnswerEvaluator) SessionService {
	return &sessionServiceImpl{
		generator: generator,
		evaluator: evaluator,
		sessions:  make(map[string]*session.Session),
	}
}

func (s *sessionServiceImpl) Create() (string, session.Snapshot) {
	id := util.NewULID()
	sess := session.New(s.generator, s.evaluator)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	logger.Get().Info("Session created", zap.String("session_id", id))
	return id, sess.Snapshot()
}

func (s *sessionServiceImpl) lookup(sessionID string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return sess, nil
}

func (s *sessionServiceImpl) Get(sessionID string) (session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *sessionServiceImpl) Start(ctx context.Context, sessionID string, cfg domain.QuizConfiguration) (session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := sess.Start(ctx, cfg); err != nil {
		return session.Snapshot{}, err
	}
	snap := sess.Snapshot()
	logger.Get().Info("Quiz started",
		zap.String("session_id", sessionID),
		zap.String("state", string(snap.State)),
		zap.Int("num_questions", snap.TotalQuestions))
	return snap, nil
}

func (s *sessionServiceImpl) Submit(ctx context.Context, sessionID string, answer string) (domain.EvaluationVerdict, session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return domain.EvaluationVerdict{}, session.Snapshot{}, err
	}
	verdict, err := sess.Submit(ctx, answer)
	if err != nil {
		return domain.EvaluationVerdict{}, session.Snapshot{}, err
	}
	snap := sess.Snapshot()
	logger.Get().Info("Answer graded",
		zap.String("session_id", sessionID),
		zap.Bool("correct", verdict.Correct),
		zap.Bool("fallback", verdict.Fallback),
		zap.Int("user_score", snap.UserScore),
		zap.Int("model_score", snap.ModelScore))
	return verdict, snap, nil
}

func (s *sessionServiceImpl) Reset(sessionID string) (session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}
	sess.Reset()
	logger.Get().Info("Session reset", zap.String("session_id", sessionID))
	return sess.Snapshot(), nil
}

func (s *sessionServiceImpl) ClearVerdict(sessionID string) (session.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return session.Snapshot{}, err
	}
	sess.ClearVerdict()
	return sess.Snapshot(), nil
}

func (s *sessionServiceImpl) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.NewSessionNotFoundError(sessionID)
	}
	delete(s.sessions, sessionID)
	logger.Get().Info("Session deleted", zap.String("session_id", sessionID))
	return nil
}

// SweepIdle drops sessions untouched for longer than maxIdle. Sessions with
// an outstanding model call are kept.
func (s *sessionServiceImpl) SweepIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.Busy() || sess.LastUsed().After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	if removed > 0 {
		logger.Get().Info("Evicted idle sessions", zap.Int("count", removed), zap.Int("remaining", len(s.sessions)))
	}
	return removed
}

// RunSweeper calls SweepIdle every interval until ctx is done.
func RunSweeper(ctx context.Context, svc SessionService, interval, maxIdle time.Duration) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.SweepIdle(maxIdle)
		}
	}
}
