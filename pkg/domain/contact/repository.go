package contact

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, limit int) ([]Contact, error)
	Create(ctx context.Context, contact *Contact) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
