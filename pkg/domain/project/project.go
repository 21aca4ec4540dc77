package project

import (
	"time"

	"github.com/alvilabs/portfolio-api/pkg/infra/database/types"
	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string            `json:"title" gorm:"size:200;not null"`
	Slug        string            `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Description string            `json:"description" gorm:"size:1000;not null"`
	Content     string            `json:"content,omitempty" gorm:"type:text"`
	Tools       types.StringArray `json:"tools" gorm:"type:text[]"`
	Category    string            `json:"category" gorm:"size:100;not null;index:idx_projects_category_published"`
	Image       string            `json:"image,omitempty"`
	Published   bool              `json:"published" gorm:"index:idx_projects_category_published"`
	CreatedAt   time.Time         `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
