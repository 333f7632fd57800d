package handlers

import (
	"errors"
	"fmt"
	"log"

	"inventori/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a tagged application error onto its HTTP status and
// the {message, details?} body shape. Anything outside the taxonomy is
// logged and answered with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}

	if appErr.Kind == apperrors.KindInternal {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	body := fiber.Map{"message": appErr.Message}
	if appErr.Details != "" {
		body["details"] = appErr.Details
	}
	return c.Status(statusFor(appErr.Kind)).JSON(body)
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondValidation reports the first violated constraint of a
// validator.Struct failure as a 400 response.
func respondValidation(c *fiber.Ctx, err error) error {
	details := err.Error()
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		details = fmt.Sprintf("Field '%s' failed on the '%s' rule", first.Field(), first.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation error",
		"details": details,
	})
}

// respondBadBody reports an unparseable request body.
func respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"details": err.Error(),
	})
}
