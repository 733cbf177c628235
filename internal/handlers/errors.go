package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/repository"
	"github.com/sitetive/forms-backend/internal/services"
)

// ErrorHandler maps the error taxonomy to transport status codes in one
// place. Handlers return domain errors as-is; only this function decides
// what a client sees. 5xx detail is logged, never exposed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, repository.ErrNotFound):
		code = fiber.StatusNotFound
		message = "Not found"
	case errors.Is(err, services.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, services.ErrInvalidForm):
		code = fiber.StatusBadRequest
		message = err.Error()
	}

	if code >= 500 {
		slog.Error("unhandled server error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
