package careersclient

import (
	"context"
	"errors"
	"testing"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	items     []dto.EmployerApplicationView
	updateErr error
	emptyBody bool
	calls     int
}

func (f *fakeAPI) EmployerApplications(_ context.Context, _ string) ([]dto.EmployerApplicationView, error) {
	return append([]dto.EmployerApplicationView(nil), f.items...), nil
}

func (f *fakeAPI) SetApplicationStatus(_ context.Context, id uuid.UUID, status string) (*domain.Application, error) {
	f.calls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.emptyBody {
		return &domain.Application{}, nil
	}
	return &domain.Application{Base: domain.Base{ID: id}, Status: domain.ApplicationStatus(status)}, nil
}

func loadedBoard(t *testing.T) (*ApplicationBoard, *fakeAPI, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	api := &fakeAPI{items: []dto.EmployerApplicationView{
		{ID: uuid.New(), Status: domain.ApplicationPending},
		{ID: id, Status: domain.ApplicationPending},
	}}
	b := NewApplicationBoard(api)
	require.NoError(t, b.Load(context.Background(), ""))
	_, err := b.Open(id)
	require.NoError(t, err)
	return b, api, id
}

func statusOf(b *ApplicationBoard, id uuid.UUID) domain.ApplicationStatus {
	for _, it := range b.Items() {
		if it.ID == id {
			return it.Status
		}
	}
	return ""
}

func TestSetStatusUpdatesListAndDetail(t *testing.T) {
	b, _, id := loadedBoard(t)

	require.NoError(t, b.SetStatus(context.Background(), id, "shortlisted"))

	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationShortlisted, sel.Status)
	assert.Equal(t, domain.ApplicationShortlisted, statusOf(b, id))
}

func TestSetStatusKeepsRequestedValueWhenReplyIsEmpty(t *testing.T) {
	b, api, id := loadedBoard(t)
	api.emptyBody = true

	require.NoError(t, b.SetStatus(context.Background(), id, "hired"))

	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationHired, sel.Status)
	assert.Equal(t, domain.ApplicationHired, statusOf(b, id))
}

func TestSetStatusRejectsUnknownLabelWithoutCall(t *testing.T) {
	b, api, id := loadedBoard(t)

	err := b.SetStatus(context.Background(), id, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, api.calls)
	assert.Equal(t, domain.ApplicationPending, statusOf(b, id))
}

func TestSetStatusFailureLeavesStateAlone(t *testing.T) {
	b, api, id := loadedBoard(t)
	api.updateErr = errors.New("boom")

	err := b.SetStatus(context.Background(), id, "hired")
	assert.Error(t, err)

	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationPending, sel.Status)
	assert.Equal(t, domain.ApplicationPending, statusOf(b, id))
}

func TestReloadDropsVanishedDetail(t *testing.T) {
	b, api, id := loadedBoard(t)
	api.items = api.items[:1]

	require.NoError(t, b.Load(context.Background(), ""))
	_, ok := b.Selected()
	assert.False(t, ok)
	assert.ErrorIs(t, b.SetStatus(context.Background(), id, "reviewed"), ErrNotLoaded)
}
