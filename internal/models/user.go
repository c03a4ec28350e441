package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:128;not null" json:"-"` // Hash
	CreatedAt time.Time `json:"created_at"`
	// No DeletedAt, accounts are never removed
}
