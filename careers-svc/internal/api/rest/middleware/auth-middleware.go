package middleware

import (
	"strings"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

// tokenFromRequest prefers an explicit Authorization header and falls back
// to the access_token cookie.
func tokenFromRequest(ctx *fiber.Ctx) string {
	if tok := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization)); tok != "" {
		return tok
	}
	return strings.TrimSpace(ctx.Cookies(helper.AccessTokenCookie))
}

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session, err := auth.VerifyToken(tokenFromRequest(ctx))
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}
		helper.SetSession(ctx, session)
		return ctx.Next()
	}
}

// OptionalAuth attaches a session when a valid token is present. Anonymous
// and bad-token requests pass through with no session.
func OptionalAuth(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if tok := tokenFromRequest(ctx); tok != "" {
			if session, err := auth.VerifyToken(tok); err == nil {
				helper.SetSession(ctx, session)
			}
		}
		return ctx.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(auth helper.Auth, role domain.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		session, err := auth.GetCurrentUser(ctx)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}
		if session.Role != role {
			return utils.ResponseError(ctx, fiber.StatusForbidden, string(role)+" only")
		}
		return ctx.Next()
	}
}

func MemberOnly(auth helper.Auth) fiber.Handler {
	return RequireRole(auth, domain.RoleMember)
}

func EmployerOnly(auth helper.Auth) fiber.Handler {
	return RequireRole(auth, domain.RoleEmployer)
}

func AdminOnly(auth helper.Auth) fiber.Handler {
	return RequireRole(auth, domain.RoleAdmin)
}
