package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Name        string    `json:"name"`
	PhotoURL    string    `gorm:"column:photo_url" json:"photoURL"`
	Role        string    `gorm:"not null" json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLogInAt time.Time `gorm:"column:last_log_in_at" json:"lastLogInAt"`
}

func (User) TableName() string {
	return "users"
}
