package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboardhq/jobboard-backend/internal/dto"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/services"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(api fiber.Router) {
	auth := api.Group("/auth")

	auth.Post("/send-verification", h.SendVerification)
	auth.Post("/verify-email", h.VerifyEmail)
	auth.Post("/resend-verification", h.ResendVerification)
	auth.Post("/check-code", h.CheckCode)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Post("/login", h.Login)
}

func (h *AuthHandler) SendVerification(ctx *fiber.Ctx) error {
	var requestBody dto.SendVerificationRequest

	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email is required")
	}

	if err := h.svc.SendVerificationCode(requestBody.Email); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Verification code sent to your email",
	})
}

func (h *AuthHandler) VerifyEmail(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyEmailRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, token, err := h.svc.VerifyEmailAndRegister(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) ResendVerification(ctx *fiber.Ctx) error {
	var requestBody dto.SendVerificationRequest

	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email is required")
	}

	if err := h.svc.ResendVerificationCode(requestBody.Email); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Verification code resent to your email",
	})
}

func (h *AuthHandler) CheckCode(ctx *fiber.Ctx) error {
	var requestBody dto.CheckCodeRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.CheckCode(requestBody.Email, requestBody.VerificationCode, requestBody.Type); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Code is valid",
	})
}

func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest

	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email is required")
	}

	if err := h.svc.ForgotPassword(requestBody.Email); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Password reset code sent to your email",
	})
}

func (h *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ResetPasswordRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Email, reset code, and new password are required")
	}

	if err := h.svc.ResetPassword(requestBody); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Password reset successfully",
	})
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	user, token, err := h.svc.Login(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}
