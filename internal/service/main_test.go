package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"quiz-show/internal/config"
	"quiz-show/internal/domain"
	"quiz-show/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, cfg domain.QuizConfiguration) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}

type MockAnswerEvaluator struct {
	mock.Mock
}

func (m *MockAnswerEvaluator) Evaluate(ctx context.Context, question, referenceAnswer, userAnswer string) domain.EvaluationVerdict {
	args := m.Called(ctx, question, referenceAnswer, userAnswer)
	return args.Get(0).(domain.EvaluationVerdict)
}

// MockCache is an in-memory domain.Cache that can be told to fail.
type MockCache struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
	deleted []string
}

func NewMockCache() *MockCache {
	return &MockCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return "", m.failGet
	}
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	m.ttls[key] = expiration
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	return nil
}

func (m *MockCache) Deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
