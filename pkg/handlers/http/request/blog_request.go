package request

import (
	"errors"
	"strings"

	"github.com/alvilabs/portfolio-api/pkg/utils"
)

const (
	maxTitleLength   = 200
	maxExcerptLength = 500
	maxContentLength = 50000
)

type BlogUpsertRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	Published bool   `json:"published"`
}

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrInvalidSlug   = errors.New("Invalid slug format")
	ErrBlogInputLong = errors.New("Input too long")
	ErrSlugImmutable = errors.New("Slug cannot be changed")
)

func (r *BlogUpsertRequest) Validate() error {
	if r.Title == "" || r.Slug == "" || r.Excerpt == "" || r.Content == "" || r.Category == "" {
		return ErrMissingFields
	}

	r.Title = utils.SanitizeText(r.Title)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	r.Excerpt = utils.SanitizeText(r.Excerpt)
	r.Content = utils.SanitizeText(r.Content)
	r.Category = utils.SanitizeText(r.Category)
	r.Image = utils.SanitizeText(r.Image)

	if len(r.Title) > maxTitleLength || len(r.Excerpt) > maxExcerptLength || len(r.Content) > maxContentLength {
		return ErrBlogInputLong
	}

	if !utils.IsValidSlug(r.Slug) {
		return ErrInvalidSlug
	}

	return nil
}
