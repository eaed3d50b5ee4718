package repository

import (
	"context"

	"gorm.io/gorm"

	"medibook/internal/model"
)

// SpecializationRepository defines specialization persistence operations.
type SpecializationRepository interface {
	Create(ctx context.Context, specialization *model.Specialization) error
	Save(ctx context.Context, specialization *model.Specialization) error
	FindByID(ctx context.Context, id uint) (*model.Specialization, error)
	List(ctx context.Context) ([]model.Specialization, error)
	Delete(ctx context.Context, id uint) error
}

type specializationRepository struct {
	db *gorm.DB
}

// NewSpecializationRepository builds a GORM-backed specialization repository.
func NewSpecializationRepository(db *gorm.DB) SpecializationRepository {
	return &specializationRepository{db: db}
}

func (r *specializationRepository) Create(ctx context.Context, specialization *model.Specialization) error {
	return r.db.WithContext(ctx).Create(specialization).Error
}

func (r *specializationRepository) Save(ctx context.Context, specialization *model.Specialization) error {
	return r.db.WithContext(ctx).Save(specialization).Error
}

func (r *specializationRepository) FindByID(ctx context.Context, id uint) (*model.Specialization, error) {
	var specialization model.Specialization
	if err := r.db.WithContext(ctx).First(&specialization, id).Error; err != nil {
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) List(ctx context.Context) ([]model.Specialization, error) {
	var specializations []model.Specialization
	if err := r.db.WithContext(ctx).Find(&specializations).Error; err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Specialization{}, id).Error
}
