package blog

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Excerpt     string     `json:"excerpt" gorm:"size:500;not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	Category    string     `json:"category" gorm:"size:100;not null;index:idx_blogs_category_published"`
	Image       string     `json:"image,omitempty"`
	Published   bool       `json:"published" gorm:"index:idx_blogs_category_published;index:idx_blogs_published_at"`
	PublishedAt *time.Time `json:"published_at,omitempty" gorm:"index:idx_blogs_published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

// Summary is the listing projection: no content body.
type Summary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Category    string     `json:"category"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (b *Blog) Summary() Summary {
	return Summary{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		Excerpt:     b.Excerpt,
		Category:    b.Category,
		Published:   b.Published,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
