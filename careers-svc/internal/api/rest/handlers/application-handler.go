package handlers

import (
	"errors"

	"github.com/ecoba/careers/careers-svc/internal/api/rest/middleware"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc  services.ApplicationService
	auth helper.Auth
}

func NewApplicationHandler(svc services.ApplicationService, auth helper.Auth) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, auth: auth}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/jobs/:id/eligibility", middleware.OptionalAuth(h.auth), h.Eligibility)
	api.Post("/jobs/:id/apply", middleware.AuthMiddleware(h.auth), middleware.MemberOnly(h.auth), h.Apply)

	api.Get("/member/applications", middleware.AuthMiddleware(h.auth), middleware.MemberOnly(h.auth), h.ListMine)

	employer := api.Group("/employer/applications", middleware.AuthMiddleware(h.auth), middleware.EmployerOnly(h.auth))
	employer.Get("/", h.ListForEmployer)
	employer.Get("/:id", h.GetForEmployer)
	employer.Patch("/:id/status", h.SetStatus)
}

// Eligibility godoc
// @Summary Whether the caller may apply: unauthenticated, wrong_role, already_applied or eligible
// @Tags applications
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs/{id}/eligibility [get]
func (h *ApplicationHandler) Eligibility(ctx *fiber.Ctx) error {
	jobID, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	result, err := h.svc.EvaluateEligibility(ctx.UserContext(), session, jobID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.EligibilityResponse{JobID: jobID, Eligibility: result})
}

// Apply godoc
// @Summary Apply to a job. A repeat submit answers 200 with result already_applied.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "job id"
// @Param body body dto.ApplyRequest false "cover letter"
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{}
// @Router /api/jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(ctx *fiber.Ctx) error {
	jobID, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid job id")
	}

	var in dto.ApplyRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&in); err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
		}
	}
	if err := helper.ValidateStruct(in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	app, err := h.svc.Apply(ctx.UserContext(), session, jobID, in.CoverLetter)
	if errors.Is(err, services.ErrAlreadyApplied) {
		return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.ApplyResponse{Result: dto.ApplyResultAlreadyApplied})
	}
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.ApplyResponse{
		Result:      dto.ApplyResultSubmitted,
		Application: app,
	})
}

func (h *ApplicationHandler) ListMine(ctx *fiber.Ctx) error {
	session, _ := h.auth.GetCurrentUser(ctx)
	views, err := h.svc.ListMemberApplications(ctx.UserContext(), session.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, views)
}

// ListForEmployer godoc
// @Summary Applications to the caller's jobs, newest first
// @Tags employer
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, reviewed, shortlisted, rejected or hired"
// @Success 200 {object} map[string]interface{}
// @Router /api/employer/applications [get]
func (h *ApplicationHandler) ListForEmployer(ctx *fiber.Ctx) error {
	session, _ := h.auth.GetCurrentUser(ctx)
	views, err := h.svc.ListEmployerApplications(ctx.UserContext(), session.UserID, ctx.Query("status"))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, views)
}

func (h *ApplicationHandler) GetForEmployer(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	view, err := h.svc.GetEmployerApplication(ctx.UserContext(), session.UserID, id)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, view)
}

// SetStatus godoc
// @Summary Move an application to pending, reviewed, shortlisted, rejected or hired
// @Tags employer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "application id"
// @Param body body dto.SetStatusRequest true "status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/employer/applications/{id}/status [patch]
func (h *ApplicationHandler) SetStatus(ctx *fiber.Ctx) error {
	id, ok := paramID(ctx, "id")
	if !ok {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var in dto.SetStatusRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	app, err := h.svc.SetStatus(ctx.UserContext(), session.UserID, id, in.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, app)
}
