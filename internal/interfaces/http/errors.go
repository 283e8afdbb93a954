package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
)

// mapError traduce errores de dominio a respuestas HTTP. Los errores no
// reconocidos caen en 500 con el mensaje original.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrEmptyCart):
		return respond(c, fiber.StatusBadRequest, "EMPTY_CART", err)
	case errors.Is(err, domain.ErrInvalidPurchase):
		return respond(c, fiber.StatusBadRequest, "INVALID_PURCHASE", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", err)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusConflict, "EMAIL_EXISTS", err)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", err)
	default:
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", err)
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
