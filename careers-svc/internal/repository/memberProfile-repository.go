package repository

import (
	"context"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberProfileRepository interface {
	Save(ctx context.Context, profile *domain.MemberProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.MemberProfile, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MemberProfile, error)
}

type memberProfileRepository struct {
	db *gorm.DB
}

func NewMemberProfileRepository(db *gorm.DB) MemberProfileRepository {
	return &memberProfileRepository{db: db}
}

// Save writes every column in one statement, inserting when the profile has no id yet.
func (s *memberProfileRepository) Save(ctx context.Context, profile *domain.MemberProfile) error {
	return translate(s.db.WithContext(ctx).Save(profile).Error)
}

func (s *memberProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.MemberProfile, error) {
	var profile domain.MemberProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *memberProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MemberProfile, error) {
	var profiles []domain.MemberProfile
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
