package repository

import (
	"context"
	"errors"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	CreateMember(ctx context.Context, user *domain.User, profile *domain.MemberProfile) error
	CreateEmployer(ctx context.Context, user *domain.User, profile *domain.EmployerProfile) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserById(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	FindUsersByIds(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	UpdateBaseProfile(ctx context.Context, userID uuid.UUID, fullName string, avatarURL *string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.createWithProfile(ctx, user, func(*gorm.DB) error { return nil })
}

func (r *userRepository) CreateMember(ctx context.Context, user *domain.User, profile *domain.MemberProfile) error {
	return r.createWithProfile(ctx, user, func(tx *gorm.DB) error {
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) CreateEmployer(ctx context.Context, user *domain.User, profile *domain.EmployerProfile) error {
	return r.createWithProfile(ctx, user, func(tx *gorm.DB) error {
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userRepository) createWithProfile(ctx context.Context, user *domain.User, createProfile func(tx *gorm.DB) error) error {
	if user == nil {
		return errors.New("nil user")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return createProfile(tx)
	})
	if err != nil {
		log.WithError(err).Error("create user error")
		return translate(err)
	}
	return nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.WithContext(ctx).First(user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepository) FindUserById(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.WithContext(ctx).First(user, "id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepository) FindUsersByIds(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateBaseProfile(ctx context.Context, userID uuid.UUID, fullName string, avatarURL *string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"full_name":  fullName,
			"avatar_url": avatarURL,
		})
	if res.Error != nil {
		log.WithError(res.Error).Error("update base profile error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
