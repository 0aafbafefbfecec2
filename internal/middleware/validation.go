package middleware

import (
	"quiz-show/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionIDKey is the Locals key holding a validated session ID.
const SessionIDKey = "validated_session_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateSessionID(id); len(errors) > 0 {
			return errors // handled by ErrorHandler
		}

		c.Locals(SessionIDKey, id)
		return c.Next()
	}
}
