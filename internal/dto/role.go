package dto

import "medibook/internal/model"

// RoleRequest is the payload for creating a role.
type RoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// RoleResponse is the outward representation of a role.
type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewRoleResponse converts a role model to its transfer representation.
func NewRoleResponse(r *model.Role) RoleResponse {
	return RoleResponse{ID: r.ID, Name: r.Name}
}

// NewRoleResponses converts a slice of role models.
func NewRoleResponses(roles []model.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, NewRoleResponse(&roles[i]))
	}
	return out
}

// SpecializationRequest is the payload for creating or updating a specialization.
type SpecializationRequest struct {
	Name string `json:"name" validate:"required"`
}

// SpecializationResponse is the outward representation of a specialization.
type SpecializationResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewSpecializationResponse converts a specialization model.
func NewSpecializationResponse(s *model.Specialization) SpecializationResponse {
	return SpecializationResponse{ID: s.ID, Name: s.Name}
}

// NewSpecializationResponses converts a slice of specialization models.
func NewSpecializationResponses(specs []model.Specialization) []SpecializationResponse {
	out := make([]SpecializationResponse, 0, len(specs))
	for i := range specs {
		out = append(out, NewSpecializationResponse(&specs[i]))
	}
	return out
}
