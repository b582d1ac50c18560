package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobboardhq/jobboard-backend/internal/dto"
	"github.com/jobboardhq/jobboard-backend/internal/helper"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/services"
	pkgutils "github.com/jobboardhq/jobboard-backend/pkg/utils"
)

const maxCVSize = 5 * 1024 * 1024 // 5MB

type JobHandler struct {
	svc  services.JobService
	auth helper.Auth
}

func NewJobHandler(svc services.JobService, auth helper.Auth) *JobHandler {
	return &JobHandler{svc: svc, auth: auth}
}

func (h *JobHandler) SetupRoutes(api fiber.Router, authMW fiber.Handler) {
	jobs := api.Group("/jobs")

	jobs.Get("/", h.ListJobs)

	jobs.Post("/", authMW, h.PostJob)
	jobs.Get("/employer/:employerId", authMW, h.ListEmployerJobs)
	jobs.Put("/:id", authMW, h.UpdateJob)
	jobs.Delete("/:id", authMW, h.DeleteJob)
	jobs.Post("/:jobId/apply", authMW, h.ApplyJob)
}

func (h *JobHandler) ListJobs(ctx *fiber.Ctx) error {
	jobs, err := h.svc.ListJobs()
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

func (h *JobHandler) PostJob(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.JobRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	job, err := h.svc.PostJob(user.UserID, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, job)
}

func (h *JobHandler) ApplyJob(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	jobID, err := ctx.ParamsInt("jobId")
	if err != nil || jobID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	var cv *dto.CVUpload
	if file, err := ctx.FormFile("cv"); err == nil && file != nil {
		if file.Size > maxCVSize {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "cv too large (max 5MB)")
		}

		f, err := file.Open()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
		}
		data, err := pkgutils.ReadAllLimit(f, maxCVSize)
		_ = f.Close()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "cv too large (max 5MB)")
		}

		cv = &dto.CVUpload{Filename: file.Filename, Data: data}
	}

	notification, err := h.svc.ApplyJob(uint(jobID), user.UserID, cv, ctx.FormValue("coverLetter"))
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message":      "Applied and CV uploaded",
		"notification": notification,
	})
}

func (h *JobHandler) ListEmployerJobs(ctx *fiber.Ctx) error {
	employerID, err := ctx.ParamsInt("employerId")
	if err != nil || employerID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid employer id")
	}

	jobs, err := h.svc.ListEmployerJobs(uint(employerID))
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

func (h *JobHandler) UpdateJob(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	jobID, err := ctx.ParamsInt("id")
	if err != nil || jobID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	var requestBody dto.JobUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	job, err := h.svc.UpdateJob(uint(jobID), user.UserID, requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *JobHandler) DeleteJob(ctx *fiber.Ctx) error {
	user, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	jobID, err := ctx.ParamsInt("id")
	if err != nil || jobID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	if err := h.svc.DeleteJob(uint(jobID), user.UserID); err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"message": "Job deleted successfully",
	})
}
