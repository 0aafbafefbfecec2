package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quiz-show/internal/config"
	"quiz-show/internal/domain"
	"quiz-show/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
	ProviderOllama   = "ollama"
)

// NewModel builds the langchaingo model for the configured provider.
// Hosted providers require an API key; a missing key is a configuration error.
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderGoogleAI, "gemini":
		if cfg.APIKey == "" {
			return nil, domain.NewConfigurationError("Gemini API key is not configured (set LLM_API_KEY or GEMINI_API_KEY)")
		}
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return model, nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, domain.NewConfigurationError("OpenAI API key is not configured (set LLM_API_KEY)")
		}
		model, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return model, nil
	case ProviderOllama:
		if cfg.ServerURL == "" {
			return nil, domain.NewConfigurationError("Ollama server URL is not configured (set LLM_SERVER)")
		}
		model, err := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return model, nil
	default:
		return nil, domain.NewConfigurationError(fmt.Sprintf("unsupported LLM provider: %q", cfg.Provider))
	}
}

// Client adapts a langchaingo model to domain.LLMClient.
type Client struct {
	model       llms.Model
	timeout     time.Duration
	temperature float64
}

// NewClient wraps model. A zero timeout leaves the deadline to the caller's context.
func NewClient(model llms.Model, timeout time.Duration, temperature float64) *Client {
	return &Client{
		model:       model,
		timeout:     timeout,
		temperature: temperature,
	}
}

// Complete sends prompt as a single user message and returns the raw completion.
// Every failure, including a timeout, is reported as CodeClientUnavailable.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err), zap.Duration("timeout", c.timeout))
			return "", domain.NewClientUnavailableError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", domain.NewClientUnavailableError(fmt.Errorf("LLM call failed: %w", err))
	}

	l.Debug("LLM call completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_length", len(response)))
	return response, nil
}

var _ domain.LLMClient = (*Client)(nil)
