package model

// Specialization represents a medical specialization assignable to doctors.
type Specialization struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;not null"`
}
