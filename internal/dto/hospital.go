package dto

import "medibook/internal/model"

// HospitalRequest is the payload for creating or updating a hospital.
type HospitalRequest struct {
	Name       string `json:"name" validate:"required"`
	Location   string `json:"location" validate:"required"`
	TenantCode string `json:"tenant_code,omitempty"`
	UserID     *uint  `json:"user_id,omitempty"`
}

// HospitalResponse is the outward representation of a hospital.
type HospitalResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	TenantCode string `json:"tenant_code,omitempty"`
	UserID     *uint  `json:"user_id,omitempty"`
}

// NewHospitalResponse converts a hospital model to its transfer representation.
func NewHospitalResponse(h *model.Hospital) HospitalResponse {
	return HospitalResponse{
		ID:         h.ID,
		Name:       h.Name,
		Location:   h.Location,
		TenantCode: h.TenantCode,
		UserID:     h.UserID,
	}
}

// NewHospitalResponses converts a slice of hospital models.
func NewHospitalResponses(hospitals []model.Hospital) []HospitalResponse {
	out := make([]HospitalResponse, 0, len(hospitals))
	for i := range hospitals {
		out = append(out, NewHospitalResponse(&hospitals[i]))
	}
	return out
}
