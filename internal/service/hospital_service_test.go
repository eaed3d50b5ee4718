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

// MockHospitalRepository is a mock implementation of HospitalRepository.
type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	args := m.Called(ctx, hospital)
	return args.Error(0)
}

func (m *MockHospitalRepository) Save(ctx context.Context, hospital *model.Hospital) error {
	args := m.Called(ctx, hospital)
	return args.Error(0)
}

func (m *MockHospitalRepository) FindByID(ctx context.Context, id uint) (*model.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) List(ctx context.Context) ([]model.Hospital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHospitalRepository) ExistsWithNameAndLocation(ctx context.Context, name, location string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, location, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestHospitalService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.HospitalRequest
		setupMock     func(*MockHospitalRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			req:  dto.HospitalRequest{Name: "Ruby Hall", Location: "Pune"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("ExistsWithNameAndLocation", mock.Anything, "Ruby Hall", "Pune", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Hospital")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "same name and location rejected",
			req:  dto.HospitalRequest{Name: "Ruby Hall", Location: "Pune"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("ExistsWithNameAndLocation", mock.Anything, "Ruby Hall", "Pune", uint(0)).Return(true, nil)
			},
			expectedError: apperrors.ErrDuplicateHospital,
		},
		{
			name: "same name in another city passes",
			req:  dto.HospitalRequest{Name: "Ruby Hall", Location: "Mumbai"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("ExistsWithNameAndLocation", mock.Anything, "Ruby Hall", "Mumbai", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Hospital")).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHospitalRepository)
			tt.setupMock(mockRepo)

			service := NewHospitalService(mockRepo, nil)
			hospital, err := service.Create(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, hospital)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, hospital)
				assert.Equal(t, tt.req.Name, hospital.Name)
				assert.Equal(t, tt.req.Location, hospital.Location)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHospitalService_Update(t *testing.T) {
	existing := func() *model.Hospital {
		return &model.Hospital{ID: 3, Name: "Ruby Hall", Location: "Pune"}
	}

	tests := []struct {
		name          string
		id            uint
		req           dto.HospitalRequest
		setupMock     func(*MockHospitalRepository)
		expectedError error
	}{
		{
			name: "self-update with unchanged pair passes",
			id:   3,
			req:  dto.HospitalRequest{Name: "Ruby Hall", Location: "Pune"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing(), nil)
				m.On("ExistsWithNameAndLocation", mock.Anything, "Ruby Hall", "Pune", uint(3)).Return(false, nil)
				m.On("Save", mock.Anything, mock.AnythingOfType("*model.Hospital")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "renaming onto another hospital's pair is rejected",
			id:   3,
			req:  dto.HospitalRequest{Name: "City General", Location: "Pune"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing(), nil)
				m.On("ExistsWithNameAndLocation", mock.Anything, "City General", "Pune", uint(3)).Return(true, nil)
			},
			expectedError: apperrors.ErrDuplicateHospital,
		},
		{
			name: "updating a missing hospital",
			id:   99,
			req:  dto.HospitalRequest{Name: "Ghost", Location: "Nowhere"},
			setupMock: func(m *MockHospitalRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrHospitalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHospitalRepository)
			tt.setupMock(mockRepo)

			service := NewHospitalService(mockRepo, nil)
			hospital, err := service.Update(context.Background(), tt.id, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, hospital)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, hospital)
				assert.Equal(t, tt.req.Name, hospital.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHospitalService_Delete(t *testing.T) {
	t.Run("missing hospital", func(t *testing.T) {
		mockRepo := new(MockHospitalRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		service := NewHospitalService(mockRepo, nil)
		err := service.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrHospitalNotFound)
		mockRepo.AssertExpectations(t)
	})
}
