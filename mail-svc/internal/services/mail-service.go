package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecoba/careers/mail-svc/internal/dto"
	"github.com/ecoba/careers/mail-svc/internal/interfaces"
	"github.com/ecoba/careers/mail-svc/internal/templates"
)

var ErrNoRecipient = errors.New("event has no recipient")

type MailService struct {
	mailer     interfaces.Mailer
	appBaseURL string
}

func NewMailService(mailer interfaces.Mailer, appBaseURL string) *MailService {
	return &MailService{
		mailer:     mailer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

func (s *MailService) SendWelcome(ctx context.Context, e dto.UserRegisteredEvent) error {
	if e.Email == "" {
		return ErrNoRecipient
	}
	return s.send(ctx, e.Email, "Welcome to ECOBA Careers", templates.Welcome, map[string]any{
		"Name":  e.FullName,
		"Email": e.Email,
		"Role":  e.Role,
		"Link":  s.link("/"),
	})
}

func (s *MailService) SendApplicationReceived(ctx context.Context, e dto.ApplicationSubmittedEvent) error {
	if e.EmployerEmail == "" {
		return ErrNoRecipient
	}
	subject := fmt.Sprintf("New application: %s", e.JobTitle)
	return s.send(ctx, e.EmployerEmail, subject, templates.ApplicationReceived, map[string]any{
		"CompanyName":   e.CompanyName,
		"ApplicantName": e.ApplicantName,
		"JobTitle":      e.JobTitle,
		"Link":          s.link("/employer/applications/" + e.ApplicationID),
	})
}

func (s *MailService) SendStatusChanged(ctx context.Context, e dto.ApplicationStatusChangedEvent) error {
	if e.MemberEmail == "" {
		return ErrNoRecipient
	}
	label := e.StatusLabel
	if label == "" {
		label = e.Status
	}
	subject := fmt.Sprintf("Your application for %s: %s", e.JobTitle, label)
	return s.send(ctx, e.MemberEmail, subject, templates.StatusChanged, map[string]any{
		"Name":        e.MemberName,
		"JobTitle":    e.JobTitle,
		"CompanyName": e.CompanyName,
		"StatusLabel": label,
		"Link":        s.link("/member/applications"),
	})
}

func (s *MailService) send(ctx context.Context, to, subject, tmpl string, data map[string]any) error {
	body, err := templates.Render(tmpl, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", tmpl, err)
	}
	return s.mailer.Send(ctx, to, subject, body)
}

func (s *MailService) link(path string) string {
	return s.appBaseURL + path
}
