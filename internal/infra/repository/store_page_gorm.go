package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type storePageGormRepository struct {
	db *gorm.DB
}

// DI
func NewStorePageGormRepository(db *gorm.DB) repo.StorePageRepository {
	return &storePageGormRepository{db: db}
}

func (r *storePageGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.StorePage, error) {
	var pages []model.StorePage

	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("slug asc").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}

	return pages, nil
}

func (r *storePageGormRepository) FindBySlug(ctx context.Context, tenantID string, slug string) (model.StorePage, error) {
	var p model.StorePage

	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StorePage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StorePage{}, err
	}
	return p, nil
}

// 同一(tenant, slug)があれば上書き、無ければ作成。
func (r *storePageGormRepository) Upsert(ctx context.Context, p model.StorePage) (model.StorePage, error) {
	var out model.StorePage

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.StorePage

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND slug = ?", p.TenantID, p.Slug).
			First(&existing).Error

		if findErr == nil {
			res := tx.Model(&model.StorePage{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"title":   p.Title,
					"content": p.Content,
				})
			if res.Error != nil {
				return res.Error
			}

			existing.Title = p.Title
			existing.Content = p.Content
			out = existing
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		//無い場合は新規作成
		now := time.Now()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		out = p
		return nil
	})

	if err != nil {
		return model.StorePage{}, err
	}
	return out, nil
}
