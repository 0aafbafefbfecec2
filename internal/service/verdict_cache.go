package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"quiz-show/internal/adapter/evaluator"
	"quiz-show/internal/cache"
	"quiz-show/internal/domain"
	"quiz-show/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultVerdictCacheTTL = 24 * time.Hour

// CachedAnswerEvaluator reuses model-authored verdicts for answers already
// graded against the same question and reference answer.
type CachedAnswerEvaluator struct {
	inner   domain.AnswerEvaluator
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedAnswerEvaluator wraps inner. A nil cache returns inner unchanged.
func NewCachedAnswerEvaluator(inner domain.AnswerEvaluator, c domain.Cache, ttl time.Duration) domain.AnswerEvaluator {
	if c == nil {
		logger.Get().Warn("Verdict cache disabled: no cache configured")
		return inner
	}
	if ttl <= 0 {
		ttl = DefaultVerdictCacheTTL
	}
	return &CachedAnswerEvaluator{inner: inner, cache: c, ttl: ttl}
}

// VerdictCacheKey identifies a (question, reference, normalized answer) triple.
func VerdictCacheKey(question, referenceAnswer, userAnswer string) string {
	h := sha256.New()
	for _, part := range []string{question, referenceAnswer, evaluator.Normalize(userAnswer)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return cache.GenerateCacheKey("evaluation", "verdict", hex.EncodeToString(h.Sum(nil)))
}

// Evaluate never fails: cache errors are logged and grading proceeds.
func (c *CachedAnswerEvaluator) Evaluate(ctx context.Context, question, referenceAnswer, userAnswer string) domain.EvaluationVerdict {
	l := logger.Get()
	key := VerdictCacheKey(question, referenceAnswer, userAnswer)

	if cached, err := c.cache.Get(ctx, key); err == nil {
		var verdict domain.EvaluationVerdict
		errUnmarshal := json.Unmarshal([]byte(cached), &verdict)
		if errUnmarshal == nil {
			l.Debug("Verdict cache hit", zap.String("key", key))
			return verdict
		}
		l.Warn("Failed to unmarshal cached verdict, dropping entry", zap.Error(errUnmarshal), zap.String("key", key))
		if errDel := c.cache.Delete(ctx, key); errDel != nil {
			l.Error("Failed to delete corrupt cached verdict", zap.Error(errDel), zap.String("key", key))
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		l.Error("Verdict cache lookup failed", zap.Error(err), zap.String("key", key))
	}

	// The shared call outlives any single caller's cancellation.
	sharedCtx := context.WithoutCancel(ctx)
	res, _, shared := c.sfGroup.Do(key, func() (interface{}, error) {
		verdict := c.inner.Evaluate(sharedCtx, question, referenceAnswer, userAnswer)
		if verdict.Fallback {
			return verdict, nil
		}
		data, errMarshal := json.Marshal(verdict)
		if errMarshal != nil {
			l.Error("Failed to marshal verdict for caching", zap.Error(errMarshal))
			return verdict, nil
		}
		if errSet := c.cache.Set(sharedCtx, key, string(data), c.ttl); errSet != nil {
			l.Error("Failed to cache verdict", zap.Error(errSet), zap.String("key", key))
		}
		return verdict, nil
	})
	if shared {
		l.Debug("Verdict shared with a concurrent evaluation", zap.String("key", key))
	}
	return res.(domain.EvaluationVerdict)
}

var _ domain.AnswerEvaluator = (*CachedAnswerEvaluator)(nil)
