// Package dto holds transfer objects and the hand-written conversions between
// them and the persistence models. Conversions are explicit field-by-field
// functions so the mapping contract stays auditable.
package dto

import "medibook/internal/model"

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	MobileNumber     int64  `json:"mobile_number" validate:"required"`
	RoleID           uint   `json:"role_id" validate:"required"`
	SpecializationID *uint  `json:"specialization_id,omitempty"`
	HospitalID       *uint  `json:"hospital_id,omitempty"`
}

// UpdateUserRequest is the payload for updating a user. Password is optional;
// when empty the stored credential is kept.
type UpdateUserRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password,omitempty" validate:"omitempty,min=6"`
	MobileNumber     int64  `json:"mobile_number" validate:"required"`
	RoleID           uint   `json:"role_id" validate:"required"`
	SpecializationID *uint  `json:"specialization_id,omitempty"`
	HospitalID       *uint  `json:"hospital_id,omitempty"`
}

// UserResponse is the outward representation of a user. It carries no
// password field in any form.
type UserResponse struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	MobileNumber     int64                   `json:"mobile_number"`
	RoleID           uint                    `json:"role_id"`
	SpecializationID *uint                   `json:"specialization_id,omitempty"`
	HospitalID       *uint                   `json:"hospital_id,omitempty"`
	Role             *RoleResponse           `json:"role,omitempty"`
	Specialization   *SpecializationResponse `json:"specialization,omitempty"`
	Hospital         *HospitalResponse       `json:"hospital,omitempty"`
}

// NewUserResponse converts a user model to its transfer representation.
func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		MobileNumber:     u.MobileNumber,
		RoleID:           u.RoleID,
		SpecializationID: u.SpecializationID,
		HospitalID:       u.HospitalID,
	}
	if u.Role != nil {
		role := NewRoleResponse(u.Role)
		resp.Role = &role
	}
	if u.Specialization != nil {
		spec := NewSpecializationResponse(u.Specialization)
		resp.Specialization = &spec
	}
	if u.Hospital != nil {
		hospital := NewHospitalResponse(u.Hospital)
		resp.Hospital = &hospital
	}
	return resp
}

// NewUserResponses converts a slice of user models.
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
