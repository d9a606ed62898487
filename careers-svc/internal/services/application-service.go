package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/interfaces"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ApplicationService interface {
	// Member side
	EvaluateEligibility(ctx context.Context, session dto.Session, jobID uuid.UUID) (dto.Eligibility, error)
	Apply(ctx context.Context, session dto.Session, jobID uuid.UUID, coverLetter string) (*domain.Application, error)
	SubmitApplication(ctx context.Context, memberID, jobID uuid.UUID, coverLetter string) (*domain.Application, error)
	ListMemberApplications(ctx context.Context, memberUserID uuid.UUID) ([]dto.MemberApplicationView, error)

	// Employer side
	ListEmployerApplications(ctx context.Context, employerUserID uuid.UUID, status string) ([]dto.EmployerApplicationView, error)
	GetEmployerApplication(ctx context.Context, employerUserID, applicationID uuid.UUID) (*dto.EmployerApplicationView, error)
	SetStatus(ctx context.Context, employerUserID, applicationID uuid.UUID, status string) (*domain.Application, error)
}

type applicationService struct {
	appRepo      repository.ApplicationRepository
	jobRepo      repository.JobRepository
	memberRepo   repository.MemberProfileRepository
	employerRepo repository.EmployerProfileRepository
	userRepo     repository.UserRepository
	auditRepo    repository.AuditLogRepository
	producer     interfaces.ProducerHandler
	now          func() time.Time
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	memberRepo repository.MemberProfileRepository,
	employerRepo repository.EmployerProfileRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		appRepo:      appRepo,
		jobRepo:      jobRepo,
		memberRepo:   memberRepo,
		employerRepo: employerRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		producer:     producer,
		now:          time.Now,
	}
}

// EvaluateEligibility decides the session states before touching the job, so
// an anonymous caller is unauthenticated whatever job id it asks about. For
// members it agrees with SubmitApplication: a closed job is ErrJobClosed.
func (s *applicationService) EvaluateEligibility(ctx context.Context, session dto.Session, jobID uuid.UUID) (dto.Eligibility, error) {
	if !session.SignedIn() || session.Role != domain.RoleMember {
		return DecideEligibility(session.SignedIn(), session.Role, nil), nil
	}

	job, err := s.job(ctx, jobID)
	if err != nil {
		return "", err
	}
	if !job.Open(s.now()) {
		return "", ErrJobClosed
	}

	var lookupErr error
	hasApplied := func() bool {
		member, err := s.memberRepo.FindByUserID(ctx, session.UserID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				lookupErr = err
			}
			return false
		}
		exists, err := s.appRepo.Exists(ctx, jobID, member.ID)
		lookupErr = err
		return exists
	}

	result := DecideEligibility(session.SignedIn(), session.Role, hasApplied)
	if lookupErr != nil {
		return "", lookupErr
	}
	return result, nil
}

// Apply resolves the member profile of the session user and submits.
func (s *applicationService) Apply(ctx context.Context, session dto.Session, jobID uuid.UUID, coverLetter string) (*domain.Application, error) {
	if !session.SignedIn() {
		return nil, ErrUnauthenticated
	}
	if session.Role != domain.RoleMember {
		return nil, ErrWrongRole
	}

	member, err := s.memberRepo.FindByUserID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileIncomplete
	}
	if err != nil {
		return nil, err
	}
	return s.SubmitApplication(ctx, member.ID, jobID, coverLetter)
}

// SubmitApplication inserts one pending application. The existence check
// runs right before the insert; the unique index on (job_id, member_id)
// settles any race that slips past it.
func (s *applicationService) SubmitApplication(ctx context.Context, memberID, jobID uuid.UUID, coverLetter string) (*domain.Application, error) {
	job, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Open(s.now()) {
		return nil, ErrJobClosed
	}

	exists, err := s.appRepo.Exists(ctx, jobID, memberID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &domain.Application{
		JobID:       jobID,
		MemberID:    memberID,
		CoverLetter: helper.NullIfEmpty(coverLetter),
		Status:      domain.ApplicationPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		log.WithError(err).WithField("job_id", jobID).Error("insert application")
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	log.WithFields(log.Fields{"application_id": app.ID, "job_id": jobID}).Info("application submitted")
	s.publishSubmitted(ctx, job, app)
	return app, nil
}

func (s *applicationService) ListMemberApplications(ctx context.Context, memberUserID uuid.UUID) ([]dto.MemberApplicationView, error) {
	member, err := s.memberRepo.FindByUserID(ctx, memberUserID)
	if errors.Is(err, repository.ErrNotFound) {
		return []dto.MemberApplicationView{}, nil
	}
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.jobRepo.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	employerIDs := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		employerIDs = append(employerIDs, j.EmployerID)
	}
	employers, err := s.employerRepo.FindByIDs(ctx, employerIDs)
	if err != nil {
		return nil, err
	}

	return EnrichMemberApplications(apps, jobs, employers), nil
}

func (s *applicationService) ListEmployerApplications(ctx context.Context, employerUserID uuid.UUID, status string) ([]dto.EmployerApplicationView, error) {
	filter := domain.ApplicationStatus(status)
	if status != "" && !filter.Valid() {
		return nil, ErrInvalidStatus
	}

	employer, err := s.employer(ctx, employerUserID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.ListByEmployer(ctx, employer.ID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}
	apps, err := s.appRepo.ListByJobIDs(ctx, jobIDs, filter)
	if err != nil {
		return nil, err
	}
	return s.enrichForEmployer(ctx, apps, jobs)
}

func (s *applicationService) GetEmployerApplication(ctx context.Context, employerUserID, applicationID uuid.UUID) (*dto.EmployerApplicationView, error) {
	app, job, err := s.ownedApplication(ctx, employerUserID, applicationID)
	if err != nil {
		return nil, err
	}
	views, err := s.enrichForEmployer(ctx, []domain.Application{*app}, []domain.Job{*job})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// SetStatus moves an application to any of the five statuses. Unknown
// labels are rejected before anything is read or written.
func (s *applicationService) SetStatus(ctx context.Context, employerUserID, applicationID uuid.UUID, status string) (*domain.Application, error) {
	next := domain.ApplicationStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	app, job, err := s.ownedApplication(ctx, employerUserID, applicationID)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	if err := s.appRepo.UpdateStatus(ctx, app.ID, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	app.Status = next

	meta, _ := json.Marshal(map[string]string{"from": string(previous), "to": string(next)})
	entry := &domain.AuditLog{
		ActorID:  employerUserID,
		Action:   domain.AuditActionStatusChanged,
		Entity:   "application",
		EntityID: app.ID,
		Metadata: meta,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.WithError(err).WithField("application_id", app.ID).Warn("audit log write failed")
	}

	s.publishStatusChanged(ctx, job, app)
	return app, nil
}

func (s *applicationService) job(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *applicationService) employer(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	employer, err := s.employerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEmployerNotFound
	}
	return employer, err
}

// ownedApplication loads an application whose job belongs to the employer
// behind userID. A job that is gone reads as a missing application.
func (s *applicationService) ownedApplication(ctx context.Context, userID, applicationID uuid.UUID) (*domain.Application, *domain.Job, error) {
	employer, err := s.employer(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	app, err := s.appRepo.FindByID(ctx, applicationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobRepo.FindByID(ctx, app.JobID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if job.EmployerID != employer.ID {
		return nil, nil, ErrForbidden
	}
	return app, job, nil
}

func (s *applicationService) enrichForEmployer(ctx context.Context, apps []domain.Application, jobs []domain.Job) ([]dto.EmployerApplicationView, error) {
	memberIDs := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		memberIDs = append(memberIDs, a.MemberID)
	}
	members, err := s.memberRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := s.userRepo.FindUsersByIds(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	return EnrichEmployerApplications(apps, jobs, members, users), nil
}

func (s *applicationService) publishSubmitted(ctx context.Context, job *domain.Job, app *domain.Application) {
	if s.producer == nil {
		return
	}

	evt := dto.ApplicationSubmittedEvent{
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		CompanyName:   job.CompanyName(),
		ApplicantName: unknownApplicant,
	}
	if job.Employer != nil {
		evt.EmployerEmail = helper.StringValue(job.Employer.ContactEmail)
		if evt.EmployerEmail == "" {
			if owner, err := s.userRepo.FindUserById(ctx, job.Employer.UserID); err == nil {
				evt.EmployerEmail = owner.Email
			}
		}
	}
	if applicant := s.memberUser(ctx, app.MemberID); applicant != nil {
		evt.ApplicantName = applicant.FullName
	}

	publishEvent(s.producer, dto.EventApplicationSubmitted, evt)
}

func (s *applicationService) publishStatusChanged(ctx context.Context, job *domain.Job, app *domain.Application) {
	if s.producer == nil {
		return
	}

	company := job.CompanyName()
	if company == "" {
		if employer, err := s.employerRepo.FindByID(ctx, job.EmployerID); err == nil {
			company = employer.CompanyName
		}
	}

	member := s.memberUser(ctx, app.MemberID)
	if member == nil {
		log.WithField("application_id", app.ID).Warn("applicant account missing, status event skipped")
		return
	}

	publishEvent(s.producer, dto.EventApplicationStatusChanged, dto.ApplicationStatusChangedEvent{
		ApplicationID: app.ID,
		JobTitle:      job.Title,
		CompanyName:   company,
		MemberEmail:   member.Email,
		MemberName:    member.FullName,
		Status:        string(app.Status),
		StatusLabel:   app.Status.Label(),
	})
}

// memberUser resolves the account behind a member profile id, nil when gone.
func (s *applicationService) memberUser(ctx context.Context, memberID uuid.UUID) *domain.User {
	members, err := s.memberRepo.FindByIDs(ctx, []uuid.UUID{memberID})
	if err != nil || len(members) == 0 {
		return nil
	}
	user, err := s.userRepo.FindUserById(ctx, members[0].UserID)
	if err != nil {
		return nil
	}
	return user
}
