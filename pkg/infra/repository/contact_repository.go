package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/domain/contact"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) contact.Repository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]contact.Contact, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entities []contact.Contact
	q := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *ContactRepository) Create(ctx context.Context, entity *contact.Contact) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *ContactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	res := r.db.WithContext(ctx).
		Model(&contact.Contact{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("contact", id.String())
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	res := r.db.WithContext(ctx).Delete(&contact.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("contact", id.String())
	}
	return nil
}
