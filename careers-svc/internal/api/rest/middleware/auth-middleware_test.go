package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(auth helper.Auth) *fiber.App {
	app := fiber.New()
	whoami := func(ctx *fiber.Ctx) error {
		s, err := auth.GetCurrentUser(ctx)
		if err != nil {
			return ctx.SendString(string(s.Role))
		}
		return ctx.SendString(string(s.Role) + ":" + s.Email)
	}
	app.Get("/optional", OptionalAuth(auth), whoami)
	app.Get("/private", AuthMiddleware(auth), whoami)
	app.Get("/employer", AuthMiddleware(auth), EmployerOnly(auth), whoami)
	return app
}

func call(t *testing.T, app *fiber.App, path string, setup func(r *http.Request)) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestOptionalAuth(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newTestApp(auth)
	token, err := auth.GenerateToken(uuid.New(), "ada@example.com", domain.RoleMember)
	require.NoError(t, err)

	code, body := call(t, app, "/optional", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "none", body)

	code, body = call(t, app, "/optional", func(r *http.Request) { r.Header.Set("Authorization", "garbage") })
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "none", body)

	code, body = call(t, app, "/optional", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "member:ada@example.com", body)
}

func TestAuthMiddleware(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newTestApp(auth)

	code, _ := call(t, app, "/private", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	forged, err := helper.SetupAuth("other-secret", time.Hour).GenerateToken(uuid.New(), "x@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	code, _ = call(t, app, "/private", func(r *http.Request) { r.Header.Set("Authorization", forged) })
	assert.Equal(t, fiber.StatusUnauthorized, code)

	token, err := auth.GenerateToken(uuid.New(), "hr@acme.test", domain.RoleEmployer)
	require.NoError(t, err)
	code, body := call(t, app, "/private", func(r *http.Request) {
		r.Header.Set("Cookie", helper.AccessTokenCookie+"="+token)
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "employer:hr@acme.test", body)
}

func TestRoleGuard(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newTestApp(auth)

	member, err := auth.GenerateToken(uuid.New(), "ada@example.com", domain.RoleMember)
	require.NoError(t, err)
	code, body := call(t, app, "/employer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+member) })
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.JSONEq(t, `{"error":"employer only"}`, body)

	employer, err := auth.GenerateToken(uuid.New(), "hr@acme.test", domain.RoleEmployer)
	require.NoError(t, err)
	code, _ = call(t, app, "/employer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+employer) })
	assert.Equal(t, fiber.StatusOK, code)
}

func TestHeaderWinsOverStaleCookie(t *testing.T) {
	auth := helper.SetupAuth("secret", time.Hour)
	app := newTestApp(auth)

	stale, err := helper.SetupAuth("rotated-secret", time.Hour).GenerateToken(uuid.New(), "old@example.com", domain.RoleMember)
	require.NoError(t, err)
	fresh, err := auth.GenerateToken(uuid.New(), "hr@acme.test", domain.RoleEmployer)
	require.NoError(t, err)

	code, body := call(t, app, "/private", func(r *http.Request) {
		r.Header.Set("Cookie", helper.AccessTokenCookie+"="+stale)
		r.Header.Set("Authorization", "Bearer "+fresh)
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "employer:hr@acme.test", body)

	// without a header the cookie is still used
	code, _ = call(t, app, "/private", func(r *http.Request) {
		r.Header.Set("Cookie", helper.AccessTokenCookie+"="+stale)
	})
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
