package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化（保存・取得）だけを約束。
// 読み取りは必ずtenant_idで絞る。
type ProductRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]model.Product, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]model.Product, error)
	FindByID(ctx context.Context, tenantID string, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, tenantID string, id string) error
}
