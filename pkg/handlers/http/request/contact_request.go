package request

import (
	"errors"

	"github.com/alvilabs/portfolio-api/pkg/utils"
)

const (
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 5000
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var (
	ErrContactFieldsRequired = errors.New("All fields are required")
	ErrInvalidEmail          = errors.New("Invalid email format")
	ErrInputTooLong          = errors.New("Input too long")
)

func (r *ContactRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Subject == "" || r.Message == "" {
		return ErrContactFieldsRequired
	}

	r.Name = utils.SanitizeText(r.Name)
	r.Email = utils.SanitizeText(r.Email)
	r.Subject = utils.SanitizeText(r.Subject)
	r.Message = utils.SanitizeText(r.Message)

	if !utils.IsValidEmail(r.Email) {
		return ErrInvalidEmail
	}

	if len(r.Name) > maxNameLength || len(r.Subject) > maxSubjectLength || len(r.Message) > maxMessageLength {
		return ErrInputTooLong
	}

	return nil
}
