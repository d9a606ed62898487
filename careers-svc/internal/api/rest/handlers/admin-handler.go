package handlers

import (
	"github.com/ecoba/careers/careers-svc/internal/api/rest/middleware"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	svc  services.AuditService
	auth helper.Auth
}

func NewAdminHandler(svc services.AuditService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.auth))
	admin.Get("/audit-logs", h.ListAuditLogs)
}

// ListAuditLogs godoc
// @Summary Status changes and job deletions, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "page size (max 200)"
// @Param offset query int false "offset"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(ctx *fiber.Ctx) error {
	logs, err := h.svc.ListAuditLogs(ctx.UserContext(), ctx.QueryInt("limit", 50), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
}
