package model

import "time"

// Hospital represents a tenant hospital. The (Name, Location) pair is unique;
// the uniqueness guard in the hospital service checks it before every write and
// the composite index is the backstop against races.
type Hospital struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:255;not null;uniqueIndex:idx_hospital_name_location"`
	Location   string `json:"location" gorm:"size:255;not null;uniqueIndex:idx_hospital_name_location"`
	TenantCode string `json:"tenant_code" gorm:"size:64"`
	UserID     *uint  `json:"user_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
