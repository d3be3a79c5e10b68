package presenters

import (
	"errors"

	"recipe-service/domain"

	"github.com/gofiber/fiber/v2"
)

type (
	MessageResponse struct {
		Message string `json:"message"`
	}

	// ValidationResponse lists every message per offending field.
	ValidationResponse struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
)

// SuccessResponse writes data as the bare body. With no data the message is
// sent instead.
func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	if data == nil {
		return c.Status(statusCode).JSON(MessageResponse{Message: message})
	}
	return c.Status(statusCode).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	var e *domain.Error
	if errors.As(err, &e) && e.Message != "" {
		message = e.Message
	}
	return c.Status(statusCode).JSON(MessageResponse{Message: message})
}

func ValidationErrorResponse(c *fiber.Ctx, fields []domain.FieldError) error {
	errs := make(map[string][]string, len(fields))
	for _, f := range fields {
		errs[f.Field] = append(errs[f.Field], f.Message)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationResponse{
		Message: domain.MessageInvalidRecipe,
		Errors:  errs,
	})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		return fiber.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return fiber.StatusNotFound
	case domain.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// FailureResponse renders any service error with the status of its kind.
func FailureResponse(c *fiber.Ctx, message string, err error) error {
	if domain.IsCode(err, domain.CodeValidation) {
		return ValidationErrorResponse(c, domain.FieldErrors(err))
	}
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(MessageResponse{Message: message})
	}
	return ErrorResponse(c, status, message, err)
}
