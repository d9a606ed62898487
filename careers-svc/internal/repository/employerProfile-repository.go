package repository

import (
	"context"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployerProfileRepository interface {
	Save(ctx context.Context, profile *domain.EmployerProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.EmployerProfile, error)
}

type employerProfileRepository struct {
	db *gorm.DB
}

func NewEmployerProfileRepository(db *gorm.DB) EmployerProfileRepository {
	return &employerProfileRepository{db: db}
}

func (e *employerProfileRepository) Save(ctx context.Context, profile *domain.EmployerProfile) error {
	return translate(e.db.WithContext(ctx).Save(profile).Error)
}

func (e *employerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.EmployerProfile, error) {
	var profile domain.EmployerProfile
	if err := e.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (e *employerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.EmployerProfile, error) {
	var profile domain.EmployerProfile
	if err := e.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (e *employerProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.EmployerProfile, error) {
	var profiles []domain.EmployerProfile
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := e.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
