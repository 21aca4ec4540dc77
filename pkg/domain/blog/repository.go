package blog

import "context"

type Repository interface {
	List(ctx context.Context) ([]Blog, error)
	ListPublished(ctx context.Context) ([]Blog, error)
	GetBySlug(ctx context.Context, slug string) (*Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Blog, error)
	Create(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	DeleteBySlug(ctx context.Context, slug string) error
}
