package admin

import "context"

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
}
