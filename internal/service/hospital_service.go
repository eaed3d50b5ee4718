package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"medibook/internal/cache"
	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/model"
	"medibook/internal/repository"
)

const hospitalCacheTTL = 5 * time.Minute

// HospitalService exposes hospital management operations. Writes are guarded
// on the (name, location) pair; a colliding create or update is rejected with
// ErrDuplicateHospital before anything is persisted.
type HospitalService interface {
	Create(ctx context.Context, in dto.HospitalRequest) (*model.Hospital, error)
	Update(ctx context.Context, id uint, in dto.HospitalRequest) (*model.Hospital, error)
	Get(ctx context.Context, id uint) (*model.Hospital, error)
	List(ctx context.Context) ([]model.Hospital, error)
	Delete(ctx context.Context, id uint) error
}

type hospitalService struct {
	repo  repository.HospitalRepository
	cache *cache.Client
}

// NewHospitalService builds a HospitalService with repository and cache.
func NewHospitalService(repo repository.HospitalRepository, cache *cache.Client) HospitalService {
	return &hospitalService{repo: repo, cache: cache}
}

func (s *hospitalService) cacheKey(id uint) string {
	return fmt.Sprintf("hospital:%d", id)
}

func (s *hospitalService) Create(ctx context.Context, in dto.HospitalRequest) (*model.Hospital, error) {
	exists, err := s.repo.ExistsWithNameAndLocation(ctx, in.Name, in.Location, 0)
	if err != nil {
		return nil, fmt.Errorf("check hospital uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateHospital
	}

	hospital := &model.Hospital{
		Name:       in.Name,
		Location:   in.Location,
		TenantCode: in.TenantCode,
		UserID:     in.UserID,
	}
	if err := s.repo.Create(ctx, hospital); err != nil {
		return nil, fmt.Errorf("create hospital: %w", err)
	}
	return hospital, nil
}

// Update re-checks the (name, location) pair against the proposed values,
// excluding the hospital's own row so an unchanged self-update passes.
func (s *hospitalService) Update(ctx context.Context, id uint, in dto.HospitalRequest) (*model.Hospital, error) {
	hospital, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("find hospital: %w", err)
	}

	exists, err := s.repo.ExistsWithNameAndLocation(ctx, in.Name, in.Location, id)
	if err != nil {
		return nil, fmt.Errorf("check hospital uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateHospital
	}

	hospital.Name = in.Name
	hospital.Location = in.Location
	hospital.TenantCode = in.TenantCode
	hospital.UserID = in.UserID

	if err := s.repo.Save(ctx, hospital); err != nil {
		return nil, fmt.Errorf("update hospital: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return hospital, nil
}

func (s *hospitalService) Get(ctx context.Context, id uint) (*model.Hospital, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Hospital
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	hospital, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(hospital); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, hospitalCacheTTL)
	}
	return hospital, nil
}

func (s *hospitalService) List(ctx context.Context) ([]model.Hospital, error) {
	return s.repo.List(ctx)
}

func (s *hospitalService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHospitalNotFound
		}
		return fmt.Errorf("find hospital: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hospital: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
