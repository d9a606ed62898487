package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApplicationService struct {
	services.ApplicationService

	applyErr     error
	setStatusErr error
	lastSession  dto.Session
	lastStatus   string
	lastCover    string
}

func (s *stubApplicationService) EvaluateEligibility(_ context.Context, session dto.Session, _ uuid.UUID) (dto.Eligibility, error) {
	s.lastSession = session
	return services.DecideEligibility(session.SignedIn(), session.Role, func() bool { return false }), nil
}

func (s *stubApplicationService) Apply(_ context.Context, session dto.Session, jobID uuid.UUID, cover string) (*domain.Application, error) {
	s.lastSession = session
	s.lastCover = cover
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	return &domain.Application{Base: domain.Base{ID: uuid.New()}, JobID: jobID, Status: domain.ApplicationPending}, nil
}

func (s *stubApplicationService) SetStatus(_ context.Context, _ uuid.UUID, id uuid.UUID, status string) (*domain.Application, error) {
	s.lastStatus = status
	if s.setStatusErr != nil {
		return nil, s.setStatusErr
	}
	return &domain.Application{Base: domain.Base{ID: id}, Status: domain.ApplicationStatus(status)}, nil
}

func newApplicationApp(svc services.ApplicationService) *fiber.App {
	app := fiber.New()
	NewApplicationHandler(svc, testAuth).SetupRoutes(app)
	return app
}

func TestEligibilityEndpoint(t *testing.T) {
	svc := &stubApplicationService{}
	app := newApplicationApp(svc)
	path := "/api/jobs/" + uuid.NewString() + "/eligibility"

	code, env := do(t, app, "GET", path, "", nil)
	require.Equal(t, fiber.StatusOK, code)
	var got dto.EligibilityResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, dto.EligibilityUnauthenticated, got.Eligibility)

	code, env = do(t, app, "GET", path, bearer(t, uuid.New(), domain.RoleEmployer), nil)
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, dto.EligibilityWrongRole, got.Eligibility)

	code, _ = do(t, app, "GET", "/api/jobs/not-a-uuid/eligibility", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestApplyEndpoint(t *testing.T) {
	svc := &stubApplicationService{}
	app := newApplicationApp(svc)
	path := "/api/jobs/" + uuid.NewString() + "/apply"
	member := bearer(t, uuid.New(), domain.RoleMember)

	code, _ := do(t, app, "POST", path, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = do(t, app, "POST", path, bearer(t, uuid.New(), domain.RoleEmployer), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, env := do(t, app, "POST", path, member, dto.ApplyRequest{CoverLetter: "hello"})
	require.Equal(t, fiber.StatusCreated, code)
	var resp dto.ApplyResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, dto.ApplyResultSubmitted, resp.Result)
	assert.Equal(t, "hello", svc.lastCover)

	svc.applyErr = services.ErrAlreadyApplied
	code, env = do(t, app, "POST", path, member, nil)
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, dto.ApplyResultAlreadyApplied, resp.Result)

	svc.applyErr = services.ErrJobClosed
	code, _ = do(t, app, "POST", path, member, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	svc.applyErr = errors.Join(services.ErrSubmitFailed, errors.New("pq: connection refused"))
	code, env = do(t, app, "POST", path, member, nil)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "failed to submit application", env.Error)
}

func TestSetStatusEndpoint(t *testing.T) {
	svc := &stubApplicationService{}
	app := newApplicationApp(svc)
	path := "/api/employer/applications/" + uuid.NewString() + "/status"
	employer := bearer(t, uuid.New(), domain.RoleEmployer)

	code, env := do(t, app, "PATCH", path, employer, dto.SetStatusRequest{Status: "shortlisted"})
	require.Equal(t, fiber.StatusOK, code)
	var updated domain.Application
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, domain.ApplicationShortlisted, updated.Status)

	svc.setStatusErr = services.ErrInvalidStatus
	code, _ = do(t, app, "PATCH", path, employer, dto.SetStatusRequest{Status: "archived"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "archived", svc.lastStatus)

	svc.setStatusErr = services.ErrForbidden
	code, _ = do(t, app, "PATCH", path, employer, dto.SetStatusRequest{Status: "hired"})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = do(t, app, "PATCH", path, bearer(t, uuid.New(), domain.RoleMember), dto.SetStatusRequest{Status: "hired"})
	assert.Equal(t, fiber.StatusForbidden, code)
}
