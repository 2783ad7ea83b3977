package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"

	"gorm.io/gorm"
)

type shippingZoneGormRepository struct {
	db *gorm.DB
}

// DI
func NewShippingZoneGormRepository(db *gorm.DB) repo.ShippingZoneRepository {
	return &shippingZoneGormRepository{db: db}
}

func (r *shippingZoneGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.ShippingZone, error) {
	var zones []model.ShippingZone

	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at asc").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}

	return zones, nil
}

func (r *shippingZoneGormRepository) Create(ctx context.Context, z model.ShippingZone) (model.ShippingZone, error) {
	if err := r.db.WithContext(ctx).Create(&z).Error; err != nil {
		return model.ShippingZone{}, err
	}
	return z, nil
}

func (r *shippingZoneGormRepository) DeleteByID(ctx context.Context, tenantID string, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.ShippingZone{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
