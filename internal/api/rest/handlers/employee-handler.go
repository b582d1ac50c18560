package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboardhq/jobboard-backend/internal/helper"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/services"
)

type EmployeeHandler struct {
	svc  services.EmployeeService
	auth helper.Auth
}

func NewEmployeeHandler(svc services.EmployeeService, auth helper.Auth) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, auth: auth}
}

func (h *EmployeeHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	employees := api.Group("/employees", authMW)

	employees.Get("/", h.ListEmployees)
	employees.Post("/:employeeId/apply", h.ContactEmployee)
	employees.Get("/:id", h.GetUser)
}

func (h *EmployeeHandler) ListEmployees(ctx *fiber.Ctx) error {
	employees, err := h.svc.ListEmployees()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, employees)
}

func (h *EmployeeHandler) ContactEmployee(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	employeeID, err := ctx.ParamsInt("employeeId")
	if err != nil || employeeID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid employee id")
	}

	if _, err := h.svc.ContactEmployee(user.UserID, uint(employeeID)); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"success": true,
	})
}

func (h *EmployeeHandler) GetUser(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("id")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.svc.GetUser(uint(userID))
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
