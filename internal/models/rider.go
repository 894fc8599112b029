package models

import "time"

const (
	RiderStatusPending = "pending"
	RiderStatusActive  = "active"
)

// Rider is a delivery agent. Status is free text; "pending" and "active"
// are the two values the list endpoints filter on.
type Rider struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"index" json:"email"`
	Contact   string    `json:"contact"`
	Region    string    `json:"region"`
	District  string    `json:"district"`
	Status    string    `gorm:"not null;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Rider) TableName() string {
	return "riders"
}
