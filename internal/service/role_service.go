package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/model"
	"medibook/internal/repository"
)

// RoleService exposes role management operations. Creating a role whose name
// already exists is rejected with ErrDuplicateRole.
type RoleService interface {
	Create(ctx context.Context, in dto.RoleRequest) (*model.Role, error)
	Get(ctx context.Context, id uint) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Delete(ctx context.Context, id uint) error
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService builds a RoleService over the role repository.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) Create(ctx context.Context, in dto.RoleRequest) (*model.Role, error) {
	existing, err := s.repo.FindByName(ctx, in.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check role existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateRole
	}

	role := &model.Role{Name: in.Name}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *roleService) Get(ctx context.Context, id uint) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	return s.repo.List(ctx)
}

func (s *roleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("find role: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
