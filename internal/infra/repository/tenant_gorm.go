package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type tenantGormRepository struct {
	db *gorm.DB
}

// DI
func NewTenantGormRepository(db *gorm.DB) domainrepo.TenantRepository {
	return &tenantGormRepository{db: db}
}

// slugでテナントを1件取得。見つからなければ nil, nil。
func (r *tenantGormRepository) FindBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	var t model.Tenant

	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

func (r *tenantGormRepository) FindByID(ctx context.Context, id string) (*model.Tenant, error) {
	var t model.Tenant

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &t, nil
}

func (r *tenantGormRepository) Create(ctx context.Context, t *model.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tenantGormRepository) Update(ctx context.Context, t *model.Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// 管理画面用の一覧（新しい順）。
func (r *tenantGormRepository) List(ctx context.Context, page int, limit int) ([]model.Tenant, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tenant{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var tenants []model.Tenant
	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}
