package service

import (
	"context"
	"fmt"

	"medibook/internal/dto"
	"medibook/internal/model"
	"medibook/internal/repository"
)

// SlotService exposes slot CRUD operations.
type SlotService interface {
	Create(ctx context.Context, in dto.SlotRequest) (*model.Slot, error)
	Update(ctx context.Context, id uint, in dto.SlotRequest) (*model.Slot, error)
	Get(ctx context.Context, id uint) (*model.Slot, error)
	List(ctx context.Context) ([]model.Slot, error)
	Delete(ctx context.Context, id uint) error
}

type slotService struct {
	repo repository.SlotRepository
}

// NewSlotService builds a SlotService.
func NewSlotService(repo repository.SlotRepository) SlotService {
	return &slotService{repo: repo}
}

func (s *slotService) Create(ctx context.Context, in dto.SlotRequest) (*model.Slot, error) {
	slot := &model.Slot{
		SlotDate:   in.SlotDate,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		HospitalID: in.HospitalID,
	}
	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}
	return slot, nil
}

func (s *slotService) Update(ctx context.Context, id uint, in dto.SlotRequest) (*model.Slot, error) {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	slot.SlotDate = in.SlotDate
	slot.StartTime = in.StartTime
	slot.EndTime = in.EndTime
	slot.HospitalID = in.HospitalID
	if err := s.repo.Save(ctx, slot); err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}
	return slot, nil
}

func (s *slotService) Get(ctx context.Context, id uint) (*model.Slot, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *slotService) List(ctx context.Context) ([]model.Slot, error) {
	return s.repo.List(ctx)
}

func (s *slotService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
