package model

import "time"

// Slot represents a bookable time slot offered by a hospital.
type Slot struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SlotDate   time.Time `json:"slot_date" gorm:"not null"`
	StartTime  time.Time `json:"start_time" gorm:"not null"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
	HospitalID *uint     `json:"hospital_id,omitempty" gorm:"index"`

	// Relations
	Hospital *Hospital `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
}
