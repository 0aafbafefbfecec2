package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quiz-show/internal/domain"
	"quiz-show/internal/parser"

	"go.uber.org/zap"
)

const generationPrompt = `You are a quiz-making assistant.
Output ONLY valid JSON in this exact shape, with no commentary before or after it:

{ "questions": [ { "q": "QUESTION TEXT", "a": "ANSWER TEXT" }, ... ] }

Please create %d %s difficulty questions on the topic: "%s".`

// LLMQuizGenerator implements domain.QuizGenerator on top of a language model client.
type LLMQuizGenerator struct {
	client domain.LLMClient
	logger *zap.Logger
}

// NewLLMQuizGenerator creates a new instance of LLMQuizGenerator.
func NewLLMQuizGenerator(client domain.LLMClient, logger *zap.Logger) (*LLMQuizGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("LLM client cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMQuizGenerator{client: client, logger: logger}, nil
}

// BuildPrompt renders the generation instruction for cfg.
func BuildPrompt(cfg domain.QuizConfiguration) string {
	return fmt.Sprintf(generationPrompt, cfg.QuestionCount, cfg.Difficulty.Lower(), cfg.Topic)
}

// generationResponse mirrors the requested wire shape. Items stay raw so a
// single bad entry does not reject the batch.
type generationResponse struct {
	Questions []json.RawMessage `json:"questions"`
}

type rawQuestion struct {
	Q *string `json:"q"`
	A *string `json:"a"`
}

// Generate asks the model for cfg.QuestionCount questions in one round trip.
//
// Entries missing "q" or "a" (or carrying non-string or blank values) are
// skipped; the rest keep their model-provided order. A response without a
// "questions" key yields an empty slice.
func (g *LLMQuizGenerator) Generate(ctx context.Context, cfg domain.QuizConfiguration) ([]domain.QuizQuestion, error) {
	prompt := BuildPrompt(cfg)
	g.logger.Info("Requesting quiz from LLM",
		zap.String("topic", cfg.Topic),
		zap.String("difficulty", string(cfg.Difficulty)),
		zap.Int("num_questions", cfg.QuestionCount))
	g.logger.Debug("Quiz generation prompt", zap.String("prompt", prompt))

	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logger.Error("LLM call failed during quiz generation", zap.Error(err))
		if domain.HasCode(err, domain.CodeClientUnavailable) {
			return nil, err
		}
		return nil, domain.NewClientUnavailableError(err)
	}
	g.logger.Debug("Raw LLM quiz response", zap.String("raw_response", raw))

	resp, err := parser.Decode[generationResponse](raw)
	if err != nil {
		snippet := raw
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			snippet = parseErr.RawSnippet
		}
		g.logger.Error("Failed to parse quiz JSON from LLM response",
			zap.Error(err),
			zap.String("json_string_tried_to_parse", snippet))
		return nil, domain.NewMalformedResponseError(snippet, err)
	}

	questions := make([]domain.QuizQuestion, 0, len(resp.Questions))
	for i, item := range resp.Questions {
		var rq rawQuestion
		if err := json.Unmarshal(item, &rq); err != nil || rq.Q == nil || rq.A == nil ||
			strings.TrimSpace(*rq.Q) == "" || strings.TrimSpace(*rq.A) == "" {
			g.logger.Warn("Skipping incomplete question from LLM",
				zap.Int("position", i),
				zap.String("item", string(item)))
			continue
		}
		questions = append(questions, domain.QuizQuestion{
			Text:            strings.TrimSpace(*rq.Q),
			ReferenceAnswer: strings.TrimSpace(*rq.A),
		})
	}

	if len(questions) > cfg.QuestionCount {
		g.logger.Info("LLM returned more questions than requested, truncating",
			zap.Int("num_returned", len(questions)),
			zap.Int("num_requested", cfg.QuestionCount))
		questions = questions[:cfg.QuestionCount]
	}
	if len(questions) == 0 {
		g.logger.Warn("LLM returned no usable questions", zap.Int("num_requested", cfg.QuestionCount))
	}

	g.logger.Info("Quiz generated", zap.Int("num_quizzes_generated", len(questions)))
	return questions, nil
}

// Static assertion to ensure LLMQuizGenerator implements QuizGenerator
var _ domain.QuizGenerator = (*LLMQuizGenerator)(nil)
