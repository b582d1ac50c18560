package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboardhq/jobboard-backend/internal/dto"
	"github.com/jobboardhq/jobboard-backend/internal/helper"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/services"
)

type NotificationHandler struct {
	svc  services.NotificationService
	auth helper.Auth
}

func NewNotificationHandler(svc services.NotificationService, auth helper.Auth) *NotificationHandler {
	return &NotificationHandler{svc: svc, auth: auth}
}

func (h *NotificationHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	notifications := api.Group("/notifications", authMW)

	notifications.Get("/", h.List)
	notifications.Post("/respond/:id", h.Respond)
	notifications.Delete("/:id", h.Delete)
}

func (h *NotificationHandler) List(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	notifications, err := h.svc.List(user.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, notifications)
}

func (h *NotificationHandler) Respond(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID, err := ctx.ParamsInt("id")
	if err != nil || notificationID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	var requestBody dto.RespondRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "response is required")
	}

	original, followUp, err := h.svc.Respond(uint(notificationID), user.UserID, requestBody.Response)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"original": original,
		"response": followUp,
	})
}

func (h *NotificationHandler) Delete(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID, err := ctx.ParamsInt("id")
	if err != nil || notificationID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := h.svc.Delete(uint(notificationID), user.UserID); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"success": true,
	})
}
