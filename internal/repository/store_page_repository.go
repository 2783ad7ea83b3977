package repository

import (
	"app/internal/domain/model"
	"context"
)

type StorePageRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]model.StorePage, error)
	FindBySlug(ctx context.Context, tenantID string, slug string) (model.StorePage, error)
	// 同一(tenant, slug)は上書き
	Upsert(ctx context.Context, p model.StorePage) (model.StorePage, error)
}
