package request

import (
	"errors"

	"github.com/alvilabs/portfolio-api/pkg/utils"
)

const (
	maxUsernameLength = 50
	maxPasswordLength = 200
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var (
	ErrCredentialsRequired = errors.New("Username and password are required")
	ErrInputLength         = errors.New("Invalid input length")
)

// Validate sanitizes the credentials in place and bounds their size
// before anything downstream touches them.
func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return ErrCredentialsRequired
	}

	r.Username = utils.SanitizeText(r.Username)
	r.Password = utils.SanitizeText(r.Password)

	if len(r.Username) > maxUsernameLength || len(r.Password) > maxPasswordLength {
		return ErrInputLength
	}
	if r.Username == "" || r.Password == "" {
		return ErrCredentialsRequired
	}

	return nil
}
