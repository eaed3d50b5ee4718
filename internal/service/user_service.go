package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"medibook/internal/auth"
	"medibook/internal/cache"
	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/model"
	"medibook/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user management operations. Writes are guarded: a create
// or update that collides with another user's email or mobile number is
// rejected with ErrDuplicateUser before anything is persisted.
type UserService interface {
	Create(ctx context.Context, in dto.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id uint, in dto.UpdateUserRequest) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListDoctors(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher, and cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Create(ctx context.Context, in dto.CreateUserRequest) (*model.User, error) {
	exists, err := s.repo.ExistsWithEmailOrMobile(ctx, in.Email, in.MobileNumber, 0)
	if err != nil {
		return nil, fmt.Errorf("check user uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:             in.Name,
		Email:            in.Email,
		MobileNumber:     in.MobileNumber,
		PasswordHash:     hash,
		RoleID:           in.RoleID,
		SpecializationID: in.SpecializationID,
		HospitalID:       in.HospitalID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update re-checks uniqueness against the proposed email and mobile number,
// excluding the user's own row so an unchanged self-update is not rejected.
func (s *userService) Update(ctx context.Context, id uint, in dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	exists, err := s.repo.ExistsWithEmailOrMobile(ctx, in.Email, in.MobileNumber, id)
	if err != nil {
		return nil, fmt.Errorf("check user uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateUser
	}

	user.Name = in.Name
	user.Email = in.Email
	user.MobileNumber = in.MobileNumber
	user.RoleID = in.RoleID
	user.SpecializationID = in.SpecializationID
	user.HospitalID = in.HospitalID
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) ListDoctors(ctx context.Context) ([]model.User, error) {
	return s.repo.ListByRoleName(ctx, model.RoleDoctor)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
