package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medibook/internal/dto"
	"medibook/internal/model"
	"medibook/internal/repository"
)

// SpecializationService exposes specialization CRUD operations.
type SpecializationService interface {
	Create(ctx context.Context, in dto.SpecializationRequest) (*model.Specialization, error)
	Update(ctx context.Context, id uint, in dto.SpecializationRequest) (*model.Specialization, error)
	Get(ctx context.Context, id uint) (*model.Specialization, error)
	List(ctx context.Context) ([]model.Specialization, error)
	Delete(ctx context.Context, id uint) error
}

type specializationService struct {
	repo repository.SpecializationRepository
}

// NewSpecializationService builds a SpecializationService.
func NewSpecializationService(repo repository.SpecializationRepository) SpecializationService {
	return &specializationService{repo: repo}
}

func (s *specializationService) Create(ctx context.Context, in dto.SpecializationRequest) (*model.Specialization, error) {
	specialization := &model.Specialization{Name: in.Name}
	if err := s.repo.Create(ctx, specialization); err != nil {
		return nil, fmt.Errorf("create specialization: %w", err)
	}
	return specialization, nil
}

func (s *specializationService) Update(ctx context.Context, id uint, in dto.SpecializationRequest) (*model.Specialization, error) {
	specialization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	specialization.Name = in.Name
	if err := s.repo.Save(ctx, specialization); err != nil {
		return nil, fmt.Errorf("update specialization: %w", err)
	}
	return specialization, nil
}

func (s *specializationService) Get(ctx context.Context, id uint) (*model.Specialization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *specializationService) List(ctx context.Context) ([]model.Specialization, error) {
	return s.repo.List(ctx)
}

// Delete removes a specialization if it exists; a missing id is reported as
// gorm.ErrRecordNotFound by the find step.
func (s *specializationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("find specialization: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
