// @title Quiz Show API
// @version 1.0
// @description Play an AI-generated quiz against the language model that wrote it.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-show/internal/adapter"
	"quiz-show/internal/adapter/evaluator"
	"quiz-show/internal/adapter/llm"
	"quiz-show/internal/adapter/quizgen"
	"quiz-show/internal/cache"
	"quiz-show/internal/config"
	"quiz-show/internal/domain"
	"quiz-show/internal/handler"
	"quiz-show/internal/logger"
	"quiz-show/internal/middleware"
	"quiz-show/internal/service"

	_ "quiz-show/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// Language model
	model, err := llm.NewModel(rootCtx, cfg.LLM)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeConfiguration {
			appLogger.Fatal("Invalid language model configuration", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		}
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	llmClient := llm.NewClient(model, cfg.LLM.Timeout, cfg.LLM.Temperature)
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Duration("timeout", cfg.LLM.Timeout))

	generator, err := quizgen.NewLLMQuizGenerator(llmClient, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}
	answerEvaluator := evaluator.NewLLMEvaluator(llmClient)

	// Verdict cache is optional
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(rootCtx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, grading without verdict cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			answerEvaluator = service.NewCachedAnswerEvaluator(answerEvaluator, cacheAdapter, cfg.Redis.TTL)
			appLogger.Info("Verdict cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.Redis.TTL))
		}
	}

	sessionService := service.NewSessionService(generator, answerEvaluator)
	go service.RunSweeper(rootCtx, sessionService, cfg.Session.SweepInterval, cfg.Session.IdleTTL)

	sessionHandler := handler.NewSessionHandler(sessionService)
	healthHandler := handler.NewHealthHandler(cacheAdapter)
	validationMiddleware := middleware.NewValidationMiddleware()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)

	sessions := apiGroup.Group("/sessions")
	sessions.Post("/", sessionHandler.CreateSession)

	byID := sessions.Group("/:id", validationMiddleware.ValidateSessionID())
	byID.Get("/", sessionHandler.GetSession)
	byID.Delete("/", sessionHandler.DeleteSession)
	byID.Post("/start", sessionHandler.StartQuiz)
	byID.Post("/answers", sessionHandler.SubmitAnswer)
	byID.Post("/reset", sessionHandler.ResetSession)
	byID.Delete("/verdict", sessionHandler.ClearVerdict)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
