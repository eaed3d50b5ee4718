package repository

import (
	"context"

	"gorm.io/gorm"

	"medibook/internal/model"
)

// SlotRepository defines slot persistence operations.
type SlotRepository interface {
	Create(ctx context.Context, slot *model.Slot) error
	Save(ctx context.Context, slot *model.Slot) error
	FindByID(ctx context.Context, id uint) (*model.Slot, error)
	List(ctx context.Context) ([]model.Slot, error)
	Delete(ctx context.Context, id uint) error
}

type slotRepository struct {
	db *gorm.DB
}

// NewSlotRepository builds a GORM-backed slot repository.
func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) Create(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepository) Save(ctx context.Context, slot *model.Slot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepository) FindByID(ctx context.Context, id uint) (*model.Slot, error) {
	var slot model.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) List(ctx context.Context) ([]model.Slot, error) {
	var slots []model.Slot
	if err := r.db.WithContext(ctx).Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Slot{}, id).Error
}
