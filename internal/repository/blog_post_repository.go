package repository

import (
	"app/internal/domain/model"
	"context"
)

type BlogPostRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]model.BlogPost, error)
	FindByID(ctx context.Context, tenantID string, id string) (model.BlogPost, error)
	Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error)
	Update(ctx context.Context, p model.BlogPost) error
	SoftDelete(ctx context.Context, tenantID string, id string) error
}
