package careersclient

import (
	"context"
	"errors"
	"sync"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid application status")
	ErrNotLoaded     = errors.New("application is not on the board")
)

// ApplicationsAPI is the part of Client the board needs.
type ApplicationsAPI interface {
	EmployerApplications(ctx context.Context, status string) ([]dto.EmployerApplicationView, error)
	SetApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Application, error)
}

// ApplicationBoard is an employer's working copy of their applications: the
// list plus the one opened in the detail view. Both always show the same
// status for the same application.
type ApplicationBoard struct {
	api ApplicationsAPI

	mu       sync.Mutex
	items    []dto.EmployerApplicationView
	selected *uuid.UUID
}

func NewApplicationBoard(api ApplicationsAPI) *ApplicationBoard {
	return &ApplicationBoard{api: api}
}

// Load replaces the list. An open detail stays open only if it is still listed.
func (b *ApplicationBoard) Load(ctx context.Context, status string) error {
	items, err := b.api.EmployerApplications(ctx, status)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = items
	if b.selected != nil && b.indexOf(*b.selected) < 0 {
		b.selected = nil
	}
	return nil
}

func (b *ApplicationBoard) Items() []dto.EmployerApplicationView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]dto.EmployerApplicationView(nil), b.items...)
}

func (b *ApplicationBoard) Open(id uuid.UUID) (dto.EmployerApplicationView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		return dto.EmployerApplicationView{}, ErrNotLoaded
	}
	b.selected = &id
	return b.items[i], nil
}

// Selected returns the open detail, if any.
func (b *ApplicationBoard) Selected() (dto.EmployerApplicationView, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.selected == nil {
		return dto.EmployerApplicationView{}, false
	}
	i := b.indexOf(*b.selected)
	if i < 0 {
		return dto.EmployerApplicationView{}, false
	}
	return b.items[i], true
}

func (b *ApplicationBoard) Close() {
	b.mu.Lock()
	b.selected = nil
	b.mu.Unlock()
}

// SetStatus checks the label locally, then asks the API. Local state only
// changes after the API accepted the update; on any failure it is untouched.
func (b *ApplicationBoard) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !domain.ApplicationStatus(status).Valid() {
		return ErrInvalidStatus
	}

	b.mu.Lock()
	known := b.indexOf(id) >= 0
	b.mu.Unlock()
	if !known {
		return ErrNotLoaded
	}

	if _, err := b.api.SetApplicationStatus(ctx, id, status); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	// the detail view reads from the same slot, so one write updates both
	if i := b.indexOf(id); i >= 0 {
		b.items[i].Status = domain.ApplicationStatus(status)
	}
	return nil
}

func (b *ApplicationBoard) indexOf(id uuid.UUID) int {
	for i := range b.items {
		if b.items[i].ID == id {
			return i
		}
	}
	return -1
}
