package domain

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned by repositories when no database
// connection was established at startup.
var ErrStorageUnavailable = errors.New("storage unavailable")

type notFoundError struct {
	EntityType string
	Ref        string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.EntityType, e.Ref)
}

func NewNotFoundError(entityType, ref string) error {
	return &notFoundError{
		EntityType: entityType,
		Ref:        ref,
	}
}

func IsNotFound(err error) bool {
	var nf *notFoundError
	return errors.As(err, &nf)
}
