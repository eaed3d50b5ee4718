package dto

import (
	"time"

	"medibook/internal/model"
)

// AvailabilityRequest is the payload for creating or updating an availability window.
type AvailabilityRequest struct {
	UserID      uint      `json:"user_id" validate:"required"`
	IsAvailable bool      `json:"is_available"`
	Date        time.Time `json:"date" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

// AvailabilityResponse is the outward representation of an availability window.
type AvailabilityResponse struct {
	ID          uint          `json:"id"`
	UserID      uint          `json:"user_id"`
	IsAvailable bool          `json:"is_available"`
	Date        time.Time     `json:"date"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	User        *UserResponse `json:"user,omitempty"`
}

// NewAvailabilityResponse converts an availability model.
func NewAvailabilityResponse(a *model.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		IsAvailable: a.IsAvailable,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
	}
	if a.User != nil {
		user := NewUserResponse(a.User)
		resp.User = &user
	}
	return resp
}

// NewAvailabilityResponses converts a slice of availability models.
func NewAvailabilityResponses(availabilities []model.Availability) []AvailabilityResponse {
	out := make([]AvailabilityResponse, 0, len(availabilities))
	for i := range availabilities {
		out = append(out, NewAvailabilityResponse(&availabilities[i]))
	}
	return out
}

// SlotRequest is the payload for creating or updating a slot.
type SlotRequest struct {
	SlotDate   time.Time `json:"slot_date" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	HospitalID *uint     `json:"hospital_id,omitempty"`
}

// SlotResponse is the outward representation of a slot.
type SlotResponse struct {
	ID         uint      `json:"id"`
	SlotDate   time.Time `json:"slot_date"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	HospitalID *uint     `json:"hospital_id,omitempty"`
}

// NewSlotResponse converts a slot model.
func NewSlotResponse(s *model.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		SlotDate:   s.SlotDate,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		HospitalID: s.HospitalID,
	}
}

// NewSlotResponses converts a slice of slot models.
func NewSlotResponses(slots []model.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, NewSlotResponse(&slots[i]))
	}
	return out
}

// AppointmentRequest is the payload for booking or updating an appointment.
type AppointmentRequest struct {
	Date       time.Time `json:"date" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	SlotID     *uint     `json:"slot_id,omitempty"`
	HospitalID *uint     `json:"hospital_id,omitempty"`
	UserID     uint      `json:"user_id" validate:"required"`
}

// AppointmentResponse is the outward representation of an appointment.
type AppointmentResponse struct {
	ID         uint              `json:"id"`
	Date       time.Time         `json:"date"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time"`
	SlotID     *uint             `json:"slot_id,omitempty"`
	HospitalID *uint             `json:"hospital_id,omitempty"`
	UserID     uint              `json:"user_id"`
	Slot       *SlotResponse     `json:"slot,omitempty"`
	Hospital   *HospitalResponse `json:"hospital,omitempty"`
	User       *UserResponse     `json:"user,omitempty"`
}

// NewAppointmentResponse converts an appointment model.
func NewAppointmentResponse(a *model.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:         a.ID,
		Date:       a.Date,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		SlotID:     a.SlotID,
		HospitalID: a.HospitalID,
		UserID:     a.UserID,
	}
	if a.Slot != nil {
		slot := NewSlotResponse(a.Slot)
		resp.Slot = &slot
	}
	if a.Hospital != nil {
		hospital := NewHospitalResponse(a.Hospital)
		resp.Hospital = &hospital
	}
	if a.User != nil {
		user := NewUserResponse(a.User)
		resp.User = &user
	}
	return resp
}

// NewAppointmentResponses converts a slice of appointment models.
func NewAppointmentResponses(appointments []model.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, NewAppointmentResponse(&appointments[i]))
	}
	return out
}
