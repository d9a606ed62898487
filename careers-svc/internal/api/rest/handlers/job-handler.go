package handlers

import (
	"github.com/ecoba/careers/careers-svc/internal/api/rest/middleware"
	"github.com/ecoba/careers/careers-svc/internal/catalog"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	svc     services.JobService
	auth    helper.Auth
	catalog catalog.Catalog
}

func NewJobHandler(svc services.JobService, auth helper.Auth, cat catalog.Catalog) *JobHandler {
	return &JobHandler{svc: svc, auth: auth, catalog: cat}
}

func (h *JobHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/catalog", h.Catalog)
	api.Get("/jobs", h.ListJobs)
	api.Get("/jobs/:id", h.GetJob)

	employer := api.Group("/employer/jobs", middleware.AuthMiddleware(h.auth), middleware.EmployerOnly(h.auth))
	employer.Get("/", h.ListMine)
	employer.Post("/", h.Create)
	employer.Put("/:id", h.Update)
	employer.Patch("/:id/active", h.ToggleActive)
	employer.Delete("/:id", h.Delete)
}

// Catalog godoc
// @Summary Pick lists for job and profile forms
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/catalog [get]
func (h *JobHandler) Catalog(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, h.catalog)
}

// ListJobs godoc
// @Summary Active jobs, newest first, filtered
// @Tags jobs
// @Produce json
// @Param q query string false "search text"
// @Param type query string false "job type"
// @Param location query string false "location, or Remote"
// @Param remote query bool false "remote only"
// @Param category query string false "category"
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs [get]
func (h *JobHandler) ListJobs(ctx *fiber.Ctx) error {
	var q dto.JobSearchQuery
	if err := ctx.QueryParser(&q); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query")
	}

	jobs, err := h.svc.ListJobs(ctx.UserContext(), q)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

// GetJob godoc
// @Summary Job detail with employer
// @Tags jobs
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/jobs/{id} [get]
func (h *JobHandler) GetJob(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}
	job, err := h.svc.GetJob(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *JobHandler) ListMine(ctx *fiber.Ctx) error {
	session, _ := h.auth.GetCurrentUser(ctx)
	jobs, err := h.svc.ListEmployerJobs(ctx.UserContext(), session.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, jobs)
}

// Create godoc
// @Summary Post a job
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.JobRequest true "job"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/employer/jobs [post]
func (h *JobHandler) Create(ctx *fiber.Ctx) error {
	var in dto.JobRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	job, err := h.svc.CreateJob(ctx.UserContext(), session.UserID, in)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, job)
}

func (h *JobHandler) Update(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}
	var in dto.JobRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	job, err := h.svc.UpdateJob(ctx.UserContext(), session.UserID, id, in)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *JobHandler) ToggleActive(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	active, err := h.svc.ToggleActive(ctx.UserContext(), session.UserID, id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ToggleActiveResponse{IsActive: active})
}

// Delete godoc
// @Summary Delete a job and all of its applications
// @Tags employer
// @Security BearerAuth
// @Param id path string true "job id"
// @Success 200 {object} map[string]interface{}
// @Router /api/employer/jobs/{id} [delete]
func (h *JobHandler) Delete(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	if err := h.svc.DeleteJob(ctx.UserContext(), session.UserID, id); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "job deleted")
}
