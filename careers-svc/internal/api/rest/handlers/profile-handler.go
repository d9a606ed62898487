package handlers

import (
	"net/url"

	"github.com/ecoba/careers/careers-svc/internal/api/rest/middleware"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	svc  services.ProfileService
	auth helper.Auth
}

func NewProfileHandler(svc services.ProfileService, auth helper.Auth) *ProfileHandler {
	return &ProfileHandler{svc: svc, auth: auth}
}

func (h *ProfileHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	member := api.Group("/member/profile", middleware.AuthMiddleware(h.auth), middleware.MemberOnly(h.auth))
	member.Get("/", h.GetMember)
	member.Put("/", h.SaveMemberInfo)
	member.Put("/skills", h.SaveMemberSkills)
	member.Post("/skills", h.AddSkill)
	member.Delete("/skills/:skill", h.RemoveSkill)

	employer := api.Group("/employer/profile", middleware.AuthMiddleware(h.auth), middleware.EmployerOnly(h.auth))
	employer.Get("/", h.GetEmployer)
	employer.Put("/", h.SaveEmployer)
}

// GetMember godoc
// @Summary Member profile; empty fields when nothing was saved yet
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/member/profile [get]
func (h *ProfileHandler) GetMember(ctx *fiber.Ctx) error {
	session, _ := h.auth.GetCurrentUser(ctx)
	profile, err := h.svc.GetMemberProfile(ctx.UserContext(), session.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

// SaveMemberInfo godoc
// @Summary Save personal info; blank optional fields are cleared
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateMemberInfoRequest true "personal info"
// @Success 200 {object} map[string]interface{}
// @Router /api/member/profile [put]
func (h *ProfileHandler) SaveMemberInfo(ctx *fiber.Ctx) error {
	var in dto.UpdateMemberInfoRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	profile, err := h.svc.SaveMemberInfo(ctx.UserContext(), session.UserID, in)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *ProfileHandler) SaveMemberSkills(ctx *fiber.Ctx) error {
	var in dto.UpdateMemberSkillsRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	profile, err := h.svc.SaveMemberSkills(ctx.UserContext(), session.UserID, in)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *ProfileHandler) AddSkill(ctx *fiber.Ctx) error {
	var in dto.SkillRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	skills, err := h.svc.AddSkill(ctx.UserContext(), session.UserID, in.Skill)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, skills)
}

func (h *ProfileHandler) RemoveSkill(ctx *fiber.Ctx) error {
	skill, err := url.PathUnescape(ctx.Params("skill"))
	if err != nil || skill == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid skill")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	skills, err := h.svc.RemoveSkill(ctx.UserContext(), session.UserID, skill)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, skills)
}

func (h *ProfileHandler) GetEmployer(ctx *fiber.Ctx) error {
	session, _ := h.auth.GetCurrentUser(ctx)
	profile, err := h.svc.GetEmployerProfile(ctx.UserContext(), session.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

// SaveEmployer godoc
// @Summary Save the company profile; company_name is required
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateEmployerProfileRequest true "company profile"
// @Success 200 {object} map[string]interface{}
// @Router /api/employer/profile [put]
func (h *ProfileHandler) SaveEmployer(ctx *fiber.Ctx) error {
	var in dto.UpdateEmployerProfileRequest
	if err := ctx.BodyParser(&in); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	session, _ := h.auth.GetCurrentUser(ctx)
	profile, err := h.svc.SaveEmployerProfile(ctx.UserContext(), session.UserID, in)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}
