package dto

import (
	"time"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
)

type Eligibility string

const (
	EligibilityUnauthenticated Eligibility = "unauthenticated"
	EligibilityWrongRole       Eligibility = "wrong_role"
	EligibilityAlreadyApplied  Eligibility = "already_applied"
	EligibilityEligible        Eligibility = "eligible"
)

type EligibilityResponse struct {
	JobID       uuid.UUID   `json:"job_id"`
	Eligibility Eligibility `json:"eligibility"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"max=10000"`
}

const (
	ApplyResultSubmitted      = "submitted"
	ApplyResultAlreadyApplied = "already_applied"
)

type ApplyResponse struct {
	Result      string              `json:"result"`
	Application *domain.Application `json:"application,omitempty"`
}

type ApplicantView struct {
	FullName    string   `json:"full_name"`
	AvatarURL   *string  `json:"avatar_url"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	Experience  *string  `json:"experience"`
	LinkedinURL *string  `json:"linkedin_url"`
	ResumeURL   *string  `json:"resume_url"`
}

// EmployerApplicationView is an application as its employer reviews it.
type EmployerApplicationView struct {
	ID          uuid.UUID                `json:"id"`
	JobID       uuid.UUID                `json:"job_id"`
	MemberID    uuid.UUID                `json:"member_id"`
	CoverLetter *string                  `json:"cover_letter"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	JobTitle    string                   `json:"job_title"`
	Applicant   ApplicantView            `json:"applicant"`
}

// MemberApplicationView is an application as the applying member tracks it.
type MemberApplicationView struct {
	ID             uuid.UUID                `json:"id"`
	JobID          uuid.UUID                `json:"job_id"`
	Status         domain.ApplicationStatus `json:"status"`
	StatusLabel    string                   `json:"status_label"`
	CoverLetter    *string                  `json:"cover_letter"`
	CreatedAt      time.Time                `json:"created_at"`
	JobTitle       string                   `json:"job_title"`
	JobLocation    *string                  `json:"job_location"`
	JobType        string                   `json:"job_type"`
	JobAvailable   bool                     `json:"job_available"`
	CompanyName    string                   `json:"company_name"`
	CompanyLogoURL *string                  `json:"company_logo_url"`
}
