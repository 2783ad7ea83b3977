package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type blogPostGormRepository struct {
	db *gorm.DB
}

// DI
func NewBlogPostGormRepository(db *gorm.DB) repo.BlogPostRepository {
	return &blogPostGormRepository{db: db}
}

func (r *blogPostGormRepository) ListByTenant(ctx context.Context, tenantID string) ([]model.BlogPost, error) {
	var posts []model.BlogPost

	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *blogPostGormRepository) FindByID(ctx context.Context, tenantID string, id string) (model.BlogPost, error) {
	var p model.BlogPost

	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPost{}, repo.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

func (r *blogPostGormRepository) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

func (r *blogPostGormRepository) Update(ctx context.Context, p model.BlogPost) error {
	res := r.db.WithContext(ctx).
		Model(&model.BlogPost{}).
		Where("id = ? AND tenant_id = ?", p.ID, p.TenantID).
		Updates(map[string]interface{}{
			"title":        p.Title,
			"slug":         p.Slug,
			"content":      p.Content,
			"is_published": p.IsPublished,
			"published_at": p.PublishedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *blogPostGormRepository) SoftDelete(ctx context.Context, tenantID string, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.BlogPost{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
