package dto

import (
	"encoding/json"
	"time"
)

// Event types published by careers-svc.
const (
	EventUserRegistered           = "user.registered"
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

type Envelope struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type UserRegisteredEvent struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type ApplicationSubmittedEvent struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	EmployerEmail string `json:"employer_email"`
	CompanyName   string `json:"company_name"`
	ApplicantName string `json:"applicant_name"`
}

type ApplicationStatusChangedEvent struct {
	ApplicationID string `json:"application_id"`
	JobTitle      string `json:"job_title"`
	CompanyName   string `json:"company_name"`
	MemberEmail   string `json:"member_email"`
	MemberName    string `json:"member_name"`
	Status        string `json:"status"`
	StatusLabel   string `json:"status_label"`
}
