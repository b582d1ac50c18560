package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/services"
)

func httpStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidOrExpiredCode),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrAlreadyVerified):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrEmailNotVerified):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(ctx *fiber.Ctx, err error) error {
	return utils.ResponseError(ctx, httpStatus(err), err.Error())
}
