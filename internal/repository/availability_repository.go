package repository

import (
	"context"

	"gorm.io/gorm"

	"medibook/internal/model"
)

// AvailabilityRepository defines availability persistence operations.
type AvailabilityRepository interface {
	Create(ctx context.Context, availability *model.Availability) error
	Save(ctx context.Context, availability *model.Availability) error
	FindByID(ctx context.Context, id uint) (*model.Availability, error)
	List(ctx context.Context) ([]model.Availability, error)
	Delete(ctx context.Context, id uint) error
}

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository builds a GORM-backed availability repository.
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Create(ctx context.Context, availability *model.Availability) error {
	return r.db.WithContext(ctx).Create(availability).Error
}

func (r *availabilityRepository) Save(ctx context.Context, availability *model.Availability) error {
	return r.db.WithContext(ctx).Save(availability).Error
}

func (r *availabilityRepository) FindByID(ctx context.Context, id uint) (*model.Availability, error) {
	var availability model.Availability
	if err := r.db.WithContext(ctx).Preload("User").First(&availability, id).Error; err != nil {
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) List(ctx context.Context) ([]model.Availability, error) {
	var availabilities []model.Availability
	if err := r.db.WithContext(ctx).Preload("User").Find(&availabilities).Error; err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Availability{}, id).Error
}
