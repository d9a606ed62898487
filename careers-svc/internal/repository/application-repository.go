package repository

import (
	"context"
	"errors"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Exists(ctx context.Context, jobID, memberID uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID, status domain.ApplicationStatus) ([]domain.Application, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts a single row. A second row for the same job and member
// fails with ErrDuplicate.
func (a *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	return translate(a.db.WithContext(ctx).Omit("Member").Create(app).Error)
}

func (a *applicationRepository) Exists(ctx context.Context, jobID, memberID uuid.UUID) (bool, error) {
	var app domain.Application
	err := a.db.WithContext(ctx).
		Select("id").
		Where("job_id = ? AND member_id = ?", jobID, memberID).
		Take(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	var app domain.Application
	if err := a.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

// ListByJobIDs returns newest first. An empty status means every status.
func (a *applicationRepository) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID, status domain.ApplicationStatus) ([]domain.Application, error) {
	var apps []domain.Application
	if len(jobIDs) == 0 {
		return apps, nil
	}
	q := a.db.WithContext(ctx).Where("job_id IN ?", jobIDs)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	res := a.db.WithContext(ctx).Model(&domain.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
