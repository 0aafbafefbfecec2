package handler

import (
	"quiz-show/internal/domain"
	"quiz-show/internal/dto"
	"quiz-show/internal/logger"
	"quiz-show/internal/middleware"
	"quiz-show/internal/service"
	"quiz-show/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles quiz session HTTP requests
type SessionHandler struct {
	service   service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// sessionID prefers the ID stored by ValidateSessionID and falls back to the raw path param.
func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.SessionIDKey).(string); ok && id != "" {
		return id
	}
	return c.Params("id")
}

// CreateSession godoc
// @Summary Create a quiz session
// @Description Opens a new idle session for one user interaction
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	id, snap := h.service.Create()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSessionResponse{
		SessionID: id,
		Session:   dto.NewSessionResponse(id, snap),
	})
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Returns the current state of a session for rendering
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id := sessionID(c)
	snap, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(id, snap))
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Generates a fresh quiz for the topic, difficulty and question count, replacing any previous quiz in the session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.StartQuizRequest true "Quiz configuration"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/start [post]
func (h *SessionHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}
	if errs := h.validator.ValidateStartRequest(&req); len(errs) > 0 {
		return errs
	}

	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		return err
	}
	cfg, err := domain.NewQuizConfiguration(req.Topic, difficulty, req.QuestionCount)
	if err != nil {
		return err
	}

	id := sessionID(c)
	snap, err := h.service.Start(c.UserContext(), id, cfg)
	if err != nil {
		return err
	}
	if snap.GenerationError != nil {
		logger.Get().Warn("Quiz generation produced no questions",
			zap.String("session_id", id),
			zap.Error(snap.GenerationError))
	}
	return c.JSON(dto.NewSessionResponse(id, snap))
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Grades the answer to the current question and advances the quiz
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be a JSON object")
	}
	if errs := h.validator.ValidateSubmitAnswer(&req); len(errs) > 0 {
		return errs
	}

	id := sessionID(c)
	verdict, snap, err := h.service.Submit(c.UserContext(), id, req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(dto.SubmitAnswerResponse{
		Verdict: dto.NewVerdictResponse(verdict),
		Session: dto.NewSessionResponse(id, snap),
	})
}

// ResetSession godoc
// @Summary Reset a session
// @Description Discards the quiz and scores and returns the session to idle
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *fiber.Ctx) error {
	id := sessionID(c)
	snap, err := h.service.Reset(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(id, snap))
}

// ClearVerdict godoc
// @Summary Acknowledge the last verdict
// @Description Clears the verdict once the client has displayed it
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/verdict [delete]
func (h *SessionHandler) ClearVerdict(c *fiber.Ctx) error {
	id := sessionID(c)
	snap, err := h.service.ClearVerdict(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(id, snap))
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.service.Delete(sessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
