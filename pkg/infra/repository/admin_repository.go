package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/domain/admin"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) admin.Repository {
	return &AdminRepository{
		db: db,
	}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	if r.db == nil {
		return nil, domain.ErrStorageUnavailable
	}
	var entity admin.Admin
	if err := r.db.WithContext(ctx).First(&entity, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *AdminRepository) Create(ctx context.Context, entity *admin.Admin) error {
	if r.db == nil {
		return domain.ErrStorageUnavailable
	}
	return r.db.WithContext(ctx).Create(entity).Error
}
