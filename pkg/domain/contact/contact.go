package contact

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:254;not null"`
	Subject   string    `json:"subject" gorm:"size:200;not null"`
	Message   string    `json:"message" gorm:"size:5000;not null"`
	Read      bool      `json:"read" gorm:"index:idx_contacts_read_created"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_contacts_read_created;index"`
}

func (Contact) TableName() string {
	return "contacts"
}
