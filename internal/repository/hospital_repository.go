package repository

import (
	"context"

	"gorm.io/gorm"

	"medibook/internal/model"
)

// HospitalRepository defines hospital persistence operations.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *model.Hospital) error
	Save(ctx context.Context, hospital *model.Hospital) error
	FindByID(ctx context.Context, id uint) (*model.Hospital, error)
	List(ctx context.Context) ([]model.Hospital, error)
	Delete(ctx context.Context, id uint) error
	ExistsWithNameAndLocation(ctx context.Context, name, location string, excludeID uint) (bool, error)
}

type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository builds a GORM-backed hospital repository.
func NewHospitalRepository(db *gorm.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepository) Save(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

func (r *hospitalRepository) FindByID(ctx context.Context, id uint) (*model.Hospital, error) {
	var hospital model.Hospital
	if err := r.db.WithContext(ctx).First(&hospital, id).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) List(ctx context.Context) ([]model.Hospital, error) {
	var hospitals []model.Hospital
	if err := r.db.WithContext(ctx).Find(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

// Delete removes the hospital row if present; deleting an absent id is a no-op.
func (r *hospitalRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Hospital{}, id).Error
}

// ExistsWithNameAndLocation reports whether another hospital already has the
// given name+location pair. excludeID skips the row being updated.
func (r *hospitalRepository) ExistsWithNameAndLocation(ctx context.Context, name, location string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Hospital{}).
		Where("name = ? AND location = ?", name, location)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
