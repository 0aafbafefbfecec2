package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-show/internal/domain"
	"quiz-show/internal/service"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := service.VerdictCacheKey("2+2?", "4", "four")
	cached := `{"correct":true,"feedback":"Yes!","fallback":false}`

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(cached)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, cached, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := service.VerdictCacheKey("2+2?", "4", "four")
	value := `{"correct":true,"feedback":"Yes!","fallback":false}`
	expiration := 24 * time.Hour

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet(key, value, expiration).SetVal("OK")
		assert.NoError(t, adapter.Set(ctx, key, value, expiration))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("OOM command not allowed")
		mock.ExpectSet(key, value, expiration).SetErr(redisErr)
		assert.ErrorIs(t, adapter.Set(ctx, key, value, expiration), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectDel("quizshow:evaluation:verdict:gone").SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, "quizshow:evaluation:verdict:gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	mock.ExpectPing().SetErr(redis.ErrClosed)
	assert.ErrorIs(t, adapter.Ping(ctx), redis.ErrClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The verdict cache round-trips through Redis: first call misses and stores,
// second call is served without consulting the model.
func TestRedisCacheAdapter_WithVerdictCache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	inner := &countingEvaluator{verdict: domain.EvaluationVerdict{Correct: true, Feedback: "Yes!"}}
	ev := service.NewCachedAnswerEvaluator(inner, NewRedisCacheAdapter(db), time.Hour)
	key := service.VerdictCacheKey("2+2?", "4", "four")
	stored := `{"correct":true,"feedback":"Yes!","fallback":false}`

	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, stored, time.Hour).SetVal("OK")
	mock.ExpectGet(key).SetVal(stored)

	assert.Equal(t, inner.verdict, ev.Evaluate(ctx, "2+2?", "4", "four"))
	assert.Equal(t, inner.verdict, ev.Evaluate(ctx, "2+2?", "4", "Four"))
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type countingEvaluator struct {
	verdict domain.EvaluationVerdict
	calls   int
}

func (c *countingEvaluator) Evaluate(ctx context.Context, question, referenceAnswer, userAnswer string) domain.EvaluationVerdict {
	c.calls++
	return c.verdict
}
