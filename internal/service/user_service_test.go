package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"medibook/internal/auth"
	"medibook/internal/dto"
	apperrors "medibook/internal/errors"
	"medibook/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRoleName(ctx context.Context, roleName string) ([]model.User, error) {
	args := m.Called(ctx, roleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsWithEmailOrMobile(ctx context.Context, email string, mobile int64, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, mobile, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CreateUserRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			req: dto.CreateUserRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				Password:     "password123",
				MobileNumber: 5550001111,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550001111), uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "duplicate email rejected",
			req: dto.CreateUserRequest{
				Name:         "Bob",
				Email:        "alice@example.com",
				Password:     "password123",
				MobileNumber: 5550002222,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550002222), uint(0)).Return(true, nil)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
		{
			name: "duplicate mobile rejected",
			req: dto.CreateUserRequest{
				Name:         "Bob",
				Email:        "bob@example.com",
				Password:     "password123",
				MobileNumber: 5550001111,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsWithEmailOrMobile", mock.Anything, "bob@example.com", int64(5550001111), uint(0)).Return(true, nil)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			hasher := auth.NewPasswordHasher(auth.MinHashIterations)
			service := NewUserService(mockRepo, hasher, nil)

			user, err := service.Create(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.req.Email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.req.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	existing := func() *model.User {
		return &model.User{
			ID:           7,
			Name:         "Alice",
			Email:        "alice@example.com",
			MobileNumber: 5550001111,
			PasswordHash: "stored-hash",
			RoleID:       3,
		}
	}

	tests := []struct {
		name          string
		id            uint
		req           dto.UpdateUserRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "self-update with unchanged email and mobile passes",
			id:   7,
			req: dto.UpdateUserRequest{
				Name:         "Alice Renamed",
				Email:        "alice@example.com",
				MobileNumber: 5550001111,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
				m.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550001111), uint(7)).Return(false, nil)
				m.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "taking another user's mobile is rejected",
			id:   7,
			req: dto.UpdateUserRequest{
				Name:         "Alice",
				Email:        "alice@example.com",
				MobileNumber: 5550009999,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
				m.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550009999), uint(7)).Return(true, nil)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
		{
			name: "updating a missing user",
			id:   42,
			req: dto.UpdateUserRequest{
				Name:         "Ghost",
				Email:        "ghost@example.com",
				MobileNumber: 5550003333,
				RoleID:       3,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			hasher := auth.NewPasswordHasher(auth.MinHashIterations)
			service := NewUserService(mockRepo, hasher, nil)

			user, err := service.Update(context.Background(), tt.id, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.req.Name, user.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Update_PasswordHandling(t *testing.T) {
	t.Run("empty password keeps stored credential", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID: 7, Email: "alice@example.com", MobileNumber: 5550001111, PasswordHash: "stored-hash", RoleID: 3,
		}, nil)
		mockRepo.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550001111), uint(7)).Return(false, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		hasher := auth.NewPasswordHasher(auth.MinHashIterations)
		service := NewUserService(mockRepo, hasher, nil)

		user, err := service.Update(context.Background(), 7, dto.UpdateUserRequest{
			Name: "Alice", Email: "alice@example.com", MobileNumber: 5550001111, RoleID: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, "stored-hash", user.PasswordHash)
		mockRepo.AssertExpectations(t)
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{
			ID: 7, Email: "alice@example.com", MobileNumber: 5550001111, PasswordHash: "stored-hash", RoleID: 3,
		}, nil)
		mockRepo.On("ExistsWithEmailOrMobile", mock.Anything, "alice@example.com", int64(5550001111), uint(7)).Return(false, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		hasher := auth.NewPasswordHasher(auth.MinHashIterations)
		service := NewUserService(mockRepo, hasher, nil)

		user, err := service.Update(context.Background(), 7, dto.UpdateUserRequest{
			Name: "Alice", Email: "alice@example.com", Password: "newsecret", MobileNumber: 5550001111, RoleID: 3,
		})

		assert.NoError(t, err)
		assert.NotEqual(t, "stored-hash", user.PasswordHash)
		assert.NotEqual(t, "newsecret", user.PasswordHash)

		ok, err := hasher.Verify(user.PasswordHash, "newsecret")
		assert.NoError(t, err)
		assert.True(t, ok)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes existing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7}, nil)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		service := NewUserService(mockRepo, auth.NewPasswordHasher(auth.MinHashIterations), nil)
		err := service.Delete(context.Background(), 7)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, auth.NewPasswordHasher(auth.MinHashIterations), nil)
		err := service.Delete(context.Background(), 42)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListDoctors(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ListByRoleName", mock.Anything, model.RoleDoctor).Return([]model.User{
		{ID: 1, Name: "Dr. A"},
		{ID: 2, Name: "Dr. B"},
	}, nil)

	service := NewUserService(mockRepo, auth.NewPasswordHasher(auth.MinHashIterations), nil)
	doctors, err := service.ListDoctors(context.Background())

	assert.NoError(t, err)
	assert.Len(t, doctors, 2)
	mockRepo.AssertExpectations(t)
}
