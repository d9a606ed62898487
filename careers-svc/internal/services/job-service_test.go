package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoba/careers/careers-svc/internal/catalog"
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(st *store) JobService {
	return NewJobService(fakeJobRepo{st}, fakeEmployerRepo{st}, fakeAuditRepo{st}, catalog.MustLoad())
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateJob(t *testing.T) {
	st := newStore()
	owner, employer := st.addEmployer("Acme Corp", "hr@acme.test")
	svc := newJobService(st)

	job, err := svc.CreateJob(context.Background(), owner.ID, dto.JobRequest{
		Title:        " Backend Engineer ",
		Description:  "Build services",
		Category:     "Technology",
		SalaryMin:    int64Ptr(100),
		SalaryMax:    int64Ptr(200),
		Requirements: []string{"Go", "  ", "SQL"},
		Benefits:     []string{""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, domain.JobTypeFullTime, job.JobType)
	assert.Equal(t, employer.ID, job.EmployerID)
	assert.True(t, job.IsActive)
	assert.Equal(t, []string{"Go", "SQL"}, []string(job.Requirements))
	assert.Empty(t, job.Benefits)
	assert.Nil(t, job.Location)
}

func TestCreateJob_Validation(t *testing.T) {
	st := newStore()
	owner, _ := st.addEmployer("Acme Corp", "hr@acme.test")
	svc := newJobService(st)

	base := func() dto.JobRequest {
		return dto.JobRequest{Title: "Engineer", Description: "Build"}
	}
	cases := map[string]func(*dto.JobRequest){
		"no title":       func(r *dto.JobRequest) { r.Title = " " },
		"no description": func(r *dto.JobRequest) { r.Description = "" },
		"bad type":       func(r *dto.JobRequest) { r.JobType = "gig" },
		"bad category":   func(r *dto.JobRequest) { r.Category = "Astrology" },
		"negative pay":   func(r *dto.JobRequest) { r.SalaryMin = int64Ptr(-1) },
		"min above max":  func(r *dto.JobRequest) { r.SalaryMin, r.SalaryMax = int64Ptr(300), int64Ptr(200) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := base()
			mutate(&in)
			_, err := svc.CreateJob(context.Background(), owner.ID, in)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "got %v", err)
		})
	}
	assert.Empty(t, st.jobs)

	_, err := svc.CreateJob(context.Background(), uuid.New(), base())
	assert.ErrorIs(t, err, ErrEmployerNotFound)
}

func TestListJobs_ActiveNewestFirstAndFiltered(t *testing.T) {
	st := newStore()
	_, employer := st.addEmployer("Acme Corp", "hr@acme.test")
	older := st.addJob(employer.ID, "Accountant")
	newer := st.addJob(employer.ID, "Backend Engineer")
	hidden := st.addJob(employer.ID, "Paused Role")
	require.NoError(t, fakeJobRepo{st}.SetActive(context.Background(), hidden.ID, false))

	svc := newJobService(st)
	jobs, err := svc.ListJobs(context.Background(), dto.JobSearchQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{newer.Title, older.Title}, titles(jobs))

	jobs, err = svc.ListJobs(context.Background(), dto.JobSearchQuery{Q: "  acme ", Type: "Full Time"})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = svc.ListJobs(context.Background(), dto.JobSearchQuery{Q: "engineer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer"}, titles(jobs))
}

func TestJobOwnership(t *testing.T) {
	st := newStore()
	owner, employer := st.addEmployer("Acme Corp", "hr@acme.test")
	other, _ := st.addEmployer("Globex", "jobs@globex.test")
	job := st.addJob(employer.ID, "Backend Engineer")
	svc := newJobService(st)
	ctx := context.Background()

	_, err := svc.UpdateJob(ctx, other.ID, job.ID, dto.JobRequest{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.ToggleActive(ctx, other.ID, job.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.DeleteJob(ctx, other.ID, job.ID), ErrForbidden)

	active, err := svc.ToggleActive(ctx, owner.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, active)
	active, err = svc.ToggleActive(ctx, owner.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, active)

	updated, err := svc.UpdateJob(ctx, owner.ID, job.ID, dto.JobRequest{Title: "Senior Engineer", Description: "Lead", JobType: "contract"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Title)
	assert.Equal(t, "contract", st.jobs[job.ID].JobType)

	_, err = svc.UpdateJob(ctx, owner.ID, uuid.New(), dto.JobRequest{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDeleteJob_CascadesAndAudits(t *testing.T) {
	st := newStore()
	owner, employer := st.addEmployer("Acme Corp", "hr@acme.test")
	_, member := st.addMember("Ada Obi", "ada@example.com")
	job := st.addJob(employer.ID, "Backend Engineer")
	require.NoError(t, fakeAppRepo{st}.Create(context.Background(), &domain.Application{JobID: job.ID, MemberID: member.ID, Status: domain.ApplicationPending}))

	svc := newJobService(st)
	require.NoError(t, svc.DeleteJob(context.Background(), owner.ID, job.ID))

	assert.Empty(t, st.jobs)
	assert.Empty(t, st.apps)
	require.Len(t, st.audits, 1)
	assert.Equal(t, domain.AuditActionJobDeleted, st.audits[0].Action)
	assert.Equal(t, job.ID, st.audits[0].EntityID)

	_, err := svc.GetJob(context.Background(), job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
