package request

import (
	"strings"

	"github.com/alvilabs/portfolio-api/pkg/utils"
)

const (
	maxDescriptionLength = 1000
	maxTools             = 20
)

type ProjectUpsertRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tools       []string `json:"tools"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Published   bool     `json:"published"`
}

func (r *ProjectUpsertRequest) Validate() error {
	if r.Title == "" || r.Slug == "" || r.Description == "" || r.Category == "" {
		return ErrMissingFields
	}

	r.Title = utils.SanitizeText(r.Title)
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	r.Description = utils.SanitizeText(r.Description)
	r.Content = utils.SanitizeText(r.Content)
	r.Category = utils.SanitizeText(r.Category)
	r.Image = utils.SanitizeText(r.Image)

	if len(r.Title) > maxTitleLength || len(r.Description) > maxDescriptionLength || len(r.Content) > maxContentLength {
		return ErrBlogInputLong
	}

	if !utils.IsValidSlug(r.Slug) {
		return ErrInvalidSlug
	}

	tools := r.Tools
	if len(tools) > maxTools {
		tools = tools[:maxTools]
	}
	cleaned := make([]string, 0, len(tools))
	for _, tool := range tools {
		if t := utils.SanitizeText(tool); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	r.Tools = cleaned

	return nil
}
