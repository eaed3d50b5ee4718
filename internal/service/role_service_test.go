package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/model"
)

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRoleService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockRepo := new(MockRoleRepository)
		mockRepo.On("FindByName", mock.Anything, "Doctor").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).Return(nil)

		service := NewRoleService(mockRepo)
		role, err := service.Create(context.Background(), dto.RoleRequest{Name: "Doctor"})

		assert.NoError(t, err)
		assert.NotNil(t, role)
		assert.Equal(t, "Doctor", role.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		mockRepo := new(MockRoleRepository)
		mockRepo.On("FindByName", mock.Anything, "Doctor").Return(&model.Role{ID: 2, Name: "Doctor"}, nil)

		service := NewRoleService(mockRepo)
		role, err := service.Create(context.Background(), dto.RoleRequest{Name: "Doctor"})

		assert.ErrorIs(t, err, apperrors.ErrDuplicateRole)
		assert.Nil(t, role)
		mockRepo.AssertExpectations(t)
	})
}

func TestRoleService_Get(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		mockRepo := new(MockRoleRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewRoleService(mockRepo)
		role, err := service.Get(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
		assert.Nil(t, role)
		mockRepo.AssertExpectations(t)
	})
}

func TestRoleService_Delete(t *testing.T) {
	t.Run("missing role", func(t *testing.T) {
		mockRepo := new(MockRoleRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewRoleService(mockRepo)
		err := service.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
		mockRepo.AssertExpectations(t)
	})
}
