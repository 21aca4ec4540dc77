package project

import "context"

type Repository interface {
	List(ctx context.Context) ([]Project, error)
	ListPublished(ctx context.Context) ([]Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	DeleteBySlug(ctx context.Context, slug string) error
}
