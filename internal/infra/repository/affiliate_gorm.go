package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type affiliateGormRepository struct {
	db *gorm.DB
}

// DI
func NewAffiliateGormRepository(db *gorm.DB) repo.AffiliateRepository {
	return &affiliateGormRepository{db: db}
}

func (r *affiliateGormRepository) FindByTenantAndUser(ctx context.Context, tenantID string, userID string) (*model.Affiliate, error) {
	var a model.Affiliate

	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

func (r *affiliateGormRepository) Create(ctx context.Context, a *model.Affiliate) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// クリック数を+1
func (r *affiliateGormRepository) IncrementClicks(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Affiliate{}).
		Where("code = ?", code).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
