package service

import (
	"context"
	"fmt"

	"medibook/internal/dto"
	"medibook/internal/model"
	"medibook/internal/repository"
)

// AppointmentService exposes appointment booking CRUD operations.
type AppointmentService interface {
	Create(ctx context.Context, in dto.AppointmentRequest) (*model.Appointment, error)
	Update(ctx context.Context, id uint, in dto.AppointmentRequest) (*model.Appointment, error)
	Get(ctx context.Context, id uint) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Appointment, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService builds an AppointmentService.
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func (s *appointmentService) Create(ctx context.Context, in dto.AppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		SlotID:     in.SlotID,
		HospitalID: in.HospitalID,
		UserID:     in.UserID,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) Update(ctx context.Context, id uint, in dto.AppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	appointment.Date = in.Date
	appointment.StartTime = in.StartTime
	appointment.EndTime = in.EndTime
	appointment.SlotID = in.SlotID
	appointment.HospitalID = in.HospitalID
	appointment.UserID = in.UserID
	if err := s.repo.Save(ctx, appointment); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) Get(ctx context.Context, id uint) (*model.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *appointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *appointmentService) ListByUser(ctx context.Context, userID uint) ([]model.Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *appointmentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
