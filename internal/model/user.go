package model

import "time"

// User represents a patient, doctor, or admin account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	MobileNumber int64  `json:"mobile_number" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON

	RoleID           uint  `json:"role_id" gorm:"not null;index"`
	SpecializationID *uint `json:"specialization_id,omitempty" gorm:"index"`
	HospitalID       *uint `json:"hospital_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Role           *Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Specialization *Specialization `json:"specialization,omitempty" gorm:"foreignKey:SpecializationID"`
	Hospital       *Hospital       `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
}
