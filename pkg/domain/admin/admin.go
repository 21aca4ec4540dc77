package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the operator principal. The password hash never leaves the
// server; it is excluded from JSON serialization entirely.
type Admin struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
