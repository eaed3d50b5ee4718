package model

import "time"

// Availability represents a doctor's availability window on a given date.
type Availability struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	Date        time.Time `json:"date" gorm:"not null"`
	StartTime   time.Time `json:"start_time" gorm:"not null"`
	EndTime     time.Time `json:"end_time" gorm:"not null"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
