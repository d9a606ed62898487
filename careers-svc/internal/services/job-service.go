package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ecoba/careers/careers-svc/internal/catalog"
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type JobService interface {
	ListJobs(ctx context.Context, query dto.JobSearchQuery) ([]domain.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*domain.Job, error)

	ListEmployerJobs(ctx context.Context, employerUserID uuid.UUID) ([]domain.Job, error)
	CreateJob(ctx context.Context, employerUserID uuid.UUID, input dto.JobRequest) (*domain.Job, error)
	UpdateJob(ctx context.Context, employerUserID, jobID uuid.UUID, input dto.JobRequest) (*domain.Job, error)
	ToggleActive(ctx context.Context, employerUserID, jobID uuid.UUID) (bool, error)
	DeleteJob(ctx context.Context, employerUserID, jobID uuid.UUID) error
}

type jobService struct {
	jobRepo      repository.JobRepository
	employerRepo repository.EmployerProfileRepository
	auditRepo    repository.AuditLogRepository
	catalog      catalog.Catalog
}

func NewJobService(
	jobRepo repository.JobRepository,
	employerRepo repository.EmployerProfileRepository,
	auditRepo repository.AuditLogRepository,
	cat catalog.Catalog,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		auditRepo:    auditRepo,
		catalog:      cat,
	}
}

func (s *jobService) ListJobs(ctx context.Context, query dto.JobSearchQuery) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FilterJobs(jobs, strings.TrimSpace(query.Q), query.Criteria()), nil
}

func (s *jobService) GetJob(ctx context.Context, jobID uuid.UUID) (*domain.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

func (s *jobService) ListEmployerJobs(ctx context.Context, employerUserID uuid.UUID) ([]domain.Job, error) {
	employer, err := s.employer(ctx, employerUserID)
	if err != nil {
		return nil, err
	}
	return s.jobRepo.ListByEmployer(ctx, employer.ID)
}

func (s *jobService) CreateJob(ctx context.Context, employerUserID uuid.UUID, input dto.JobRequest) (*domain.Job, error) {
	employer, err := s.employer(ctx, employerUserID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{EmployerID: employer.ID, IsActive: true}
	if err := s.applyJobRequest(job, input); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"job_id": job.ID, "employer_id": employer.ID}).Info("job posted")
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, employerUserID, jobID uuid.UUID, input dto.JobRequest) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, employerUserID, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.applyJobRequest(job, input); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) ToggleActive(ctx context.Context, employerUserID, jobID uuid.UUID) (bool, error) {
	job, err := s.ownedJob(ctx, employerUserID, jobID)
	if err != nil {
		return false, err
	}
	active := !job.IsActive
	if err := s.jobRepo.SetActive(ctx, job.ID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrJobNotFound
		}
		return false, err
	}
	return active, nil
}

// DeleteJob removes the job together with every application to it.
func (s *jobService) DeleteJob(ctx context.Context, employerUserID, jobID uuid.UUID) error {
	job, err := s.ownedJob(ctx, employerUserID, jobID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, job.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobNotFound
		}
		return err
	}

	meta, _ := json.Marshal(map[string]string{"title": job.Title})
	entry := &domain.AuditLog{
		ActorID:  employerUserID,
		Action:   domain.AuditActionJobDeleted,
		Entity:   "job",
		EntityID: job.ID,
		Metadata: meta,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.WithError(err).WithField("job_id", job.ID).Warn("audit log write failed")
	}
	return nil
}

func (s *jobService) employer(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	employer, err := s.employerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEmployerNotFound
	}
	return employer, err
}

// ownedJob loads the job and checks it belongs to the employer behind userID.
func (s *jobService) ownedJob(ctx context.Context, userID, jobID uuid.UUID) (*domain.Job, error) {
	employer, err := s.employer(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employer.ID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *jobService) applyJobRequest(job *domain.Job, in dto.JobRequest) error {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" {
		return invalid("title is required")
	}
	if description == "" {
		return invalid("description is required")
	}

	jobType := strings.TrimSpace(in.JobType)
	if jobType == "" {
		jobType = domain.JobTypeFullTime
	}
	if !domain.ValidJobType(jobType) {
		return invalid("job_type must be one of: %s", strings.Join(domain.JobTypes, ", "))
	}

	category := helper.NullIfEmpty(in.Category)
	if category != nil && !s.catalog.HasCategory(*category) {
		return invalid("unknown category %q", *category)
	}

	if (in.SalaryMin != nil && *in.SalaryMin < 0) || (in.SalaryMax != nil && *in.SalaryMax < 0) {
		return invalid("salary cannot be negative")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return invalid("salary_min cannot be greater than salary_max")
	}

	job.Title = title
	job.Description = description
	job.Location = helper.NullIfEmpty(in.Location)
	job.JobType = jobType
	job.Category = category
	job.Remote = in.Remote
	job.SalaryMin = in.SalaryMin
	job.SalaryMax = in.SalaryMax
	job.Requirements = pq.StringArray(helper.CleanList(in.Requirements))
	job.Benefits = pq.StringArray(helper.CleanList(in.Benefits))
	job.ExpiresAt = in.ExpiresAt
	job.Employer = nil
	return nil
}
