package users

import (
	"time"
)

// User is a registered account. Email is the natural key.
type User struct {
	Email        string    `json:"email" gorm:"primaryKey"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_users_created_at"`
}

func (User) TableName() string {
	return "users"
}
