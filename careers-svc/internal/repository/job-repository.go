package repository

import (
	"context"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Save(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Job, error)
	ListActive(ctx context.Context) ([]domain.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Job, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (j *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	return translate(j.db.WithContext(ctx).Omit("Employer").Create(job).Error)
}

func (j *jobRepository) Save(ctx context.Context, job *domain.Job) error {
	return translate(j.db.WithContext(ctx).Omit("Employer").Save(job).Error)
}

func (j *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	if err := j.db.WithContext(ctx).Preload("Employer").First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (j *jobRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Job, error) {
	var jobs []domain.Job
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := j.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListActive returns active jobs newest first with their employer attached.
func (j *jobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := j.db.WithContext(ctx).
		Preload("Employer").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *jobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]domain.Job, error) {
	var jobs []domain.Job
	err := j.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *jobRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := j.db.WithContext(ctx).Model(&domain.Job{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the job and its applications together.
func (j *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.Job{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
