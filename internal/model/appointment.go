package model

import "time"

// Appointment represents a booked appointment tying a user to a slot at a hospital.
type Appointment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Date       time.Time `json:"date" gorm:"not null"`
	StartTime  time.Time `json:"start_time" gorm:"not null"`
	EndTime    time.Time `json:"end_time" gorm:"not null"`
	SlotID     *uint     `json:"slot_id,omitempty" gorm:"index"`
	HospitalID *uint     `json:"hospital_id,omitempty" gorm:"index"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Slot     *Slot     `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	Hospital *Hospital `json:"hospital,omitempty" gorm:"foreignKey:HospitalID"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
