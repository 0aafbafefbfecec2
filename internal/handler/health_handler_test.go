package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quiz-show/internal/domain"
	"quiz-show/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingCache struct {
	err error
}

func (p *pingCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (p *pingCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return nil
}
func (p *pingCache) Delete(ctx context.Context, key string) error { return nil }
func (p *pingCache) Ping(ctx context.Context) error               { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name  string
		cache domain.Cache
		want  string
	}{
		{"no cache", nil, "disabled"},
		{"cache up", &pingCache{}, "ok"},
		{"cache down", &pingCache{err: errors.New("refused")}, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/api/health", NewHealthHandler(tt.cache).Health)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			body := decode[dto.HealthResponse](t, resp)
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.want, body.Cache)
		})
	}
}
