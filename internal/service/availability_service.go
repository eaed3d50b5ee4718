package service

import (
	"context"
	"fmt"

	"medibook/internal/dto"
	"medibook/internal/model"
	"medibook/internal/repository"
)

// AvailabilityService exposes doctor availability CRUD operations.
type AvailabilityService interface {
	Create(ctx context.Context, in dto.AvailabilityRequest) (*model.Availability, error)
	Update(ctx context.Context, id uint, in dto.AvailabilityRequest) (*model.Availability, error)
	Get(ctx context.Context, id uint) (*model.Availability, error)
	List(ctx context.Context) ([]model.Availability, error)
	Delete(ctx context.Context, id uint) error
}

type availabilityService struct {
	repo repository.AvailabilityRepository
}

// NewAvailabilityService builds an AvailabilityService.
func NewAvailabilityService(repo repository.AvailabilityRepository) AvailabilityService {
	return &availabilityService{repo: repo}
}

func (s *availabilityService) Create(ctx context.Context, in dto.AvailabilityRequest) (*model.Availability, error) {
	availability := &model.Availability{
		UserID:      in.UserID,
		IsAvailable: in.IsAvailable,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
	}
	if err := s.repo.Create(ctx, availability); err != nil {
		return nil, fmt.Errorf("create availability: %w", err)
	}
	return availability, nil
}

func (s *availabilityService) Update(ctx context.Context, id uint, in dto.AvailabilityRequest) (*model.Availability, error) {
	availability, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	availability.UserID = in.UserID
	availability.IsAvailable = in.IsAvailable
	availability.Date = in.Date
	availability.StartTime = in.StartTime
	availability.EndTime = in.EndTime
	if err := s.repo.Save(ctx, availability); err != nil {
		return nil, fmt.Errorf("update availability: %w", err)
	}
	return availability, nil
}

func (s *availabilityService) Get(ctx context.Context, id uint) (*model.Availability, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *availabilityService) List(ctx context.Context) ([]model.Availability, error) {
	return s.repo.List(ctx)
}

func (s *availabilityService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
