package services

import (
	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/google/uuid"
)

const (
	unknownJob       = "Unknown Job"
	unknownApplicant = "Unknown"
	unknownCompany   = "Unknown Company"
)

func indexBy[T any](items []T, id func(T) uuid.UUID) map[uuid.UUID]T {
	m := make(map[uuid.UUID]T, len(items))
	for _, it := range items {
		m[id(it)] = it
	}
	return m
}

// EnrichEmployerApplications joins applications with their job and
// applicant. Rows whose related records are gone get fallback values.
func EnrichEmployerApplications(
	apps []domain.Application,
	jobs []domain.Job,
	members []domain.MemberProfile,
	users []domain.User,
) []dto.EmployerApplicationView {
	jobByID := indexBy(jobs, func(j domain.Job) uuid.UUID { return j.ID })
	memberByID := indexBy(members, func(m domain.MemberProfile) uuid.UUID { return m.ID })
	userByID := indexBy(users, func(u domain.User) uuid.UUID { return u.ID })

	out := make([]dto.EmployerApplicationView, 0, len(apps))
	for _, app := range apps {
		view := dto.EmployerApplicationView{
			ID:          app.ID,
			JobID:       app.JobID,
			MemberID:    app.MemberID,
			CoverLetter: app.CoverLetter,
			Status:      app.Status,
			CreatedAt:   app.CreatedAt,
			JobTitle:    unknownJob,
			Applicant:   dto.ApplicantView{FullName: unknownApplicant, Skills: []string{}},
		}
		if job, ok := jobByID[app.JobID]; ok {
			view.JobTitle = job.Title
		}
		if member, ok := memberByID[app.MemberID]; ok {
			view.Applicant.Bio = member.Bio
			view.Applicant.Experience = member.Experience
			view.Applicant.LinkedinURL = member.LinkedinURL
			view.Applicant.ResumeURL = member.ResumeURL
			if member.Skills != nil {
				view.Applicant.Skills = member.Skills
			}
			if user, ok := userByID[member.UserID]; ok {
				if user.FullName != "" {
					view.Applicant.FullName = user.FullName
				}
				view.Applicant.AvatarURL = user.AvatarURL
			}
		}
		out = append(out, view)
	}
	return out
}

// EnrichMemberApplications joins a member's applications with the job and
// the posting company.
func EnrichMemberApplications(
	apps []domain.Application,
	jobs []domain.Job,
	employers []domain.EmployerProfile,
) []dto.MemberApplicationView {
	jobByID := indexBy(jobs, func(j domain.Job) uuid.UUID { return j.ID })
	employerByID := indexBy(employers, func(e domain.EmployerProfile) uuid.UUID { return e.ID })

	out := make([]dto.MemberApplicationView, 0, len(apps))
	for _, app := range apps {
		view := dto.MemberApplicationView{
			ID:          app.ID,
			JobID:       app.JobID,
			Status:      app.Status,
			StatusLabel: app.Status.Label(),
			CoverLetter: app.CoverLetter,
			CreatedAt:   app.CreatedAt,
			JobTitle:    unknownJob,
			JobType:     domain.JobTypeFullTime,
			CompanyName: unknownCompany,
		}
		if job, ok := jobByID[app.JobID]; ok {
			view.JobAvailable = true
			view.JobTitle = job.Title
			view.JobLocation = job.Location
			if job.JobType != "" {
				view.JobType = job.JobType
			}
			if employer, ok := employerByID[job.EmployerID]; ok {
				view.CompanyName = employer.CompanyName
				view.CompanyLogoURL = employer.CompanyLogoURL
			}
		}
		out = append(out, view)
	}
	return out
}
