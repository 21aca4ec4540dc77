package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) blog.Repository {
	return &BlogRepository{
		db: db,
	}
}

func (r *BlogRepository) List(ctx context.Context) ([]blog.Blog, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entities []blog.Blog
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *BlogRepository) ListPublished(ctx context.Context) ([]blog.Blog, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entities []blog.Blog
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at desc").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entity blog.Blog
	if err := r.db.WithContext(ctx).First(&entity, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("blog", slug)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entity blog.Blog
	err := r.db.WithContext(ctx).First(&entity, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("blog", slug)
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BlogRepository) Create(ctx context.Context, entity *blog.Blog) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BlogRepository) Update(ctx context.Context, entity *blog.Blog) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BlogRepository) DeleteBySlug(ctx context.Context, slug string) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&blog.Blog{}, "slug = ?", slug)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("blog", slug)
	}
	return nil
}
