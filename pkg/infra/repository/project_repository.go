package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/domain/project"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepository{
		db: db,
	}
}

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entities []project.Project
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *ProjectRepository) ListPublished(ctx context.Context) ([]project.Project, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entities []project.Project
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at desc").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entity project.Project
	if err := r.db.WithContext(ctx).First(&entity, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("project", slug)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *ProjectRepository) GetPublishedBySlug(ctx context.Context, slug string) (*project.Project, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entity project.Project
	err := r.db.WithContext(ctx).First(&entity, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("project", slug)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *ProjectRepository) Create(ctx context.Context, entity *project.Project) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *ProjectRepository) Update(ctx context.Context, entity *project.Project) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *ProjectRepository) DeleteBySlug(ctx context.Context, slug string) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&project.Project{}, "slug = ?", slug)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("project", slug)
	}
	return nil
}
