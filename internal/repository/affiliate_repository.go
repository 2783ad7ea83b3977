package repository

import (
	"app/internal/domain/model"
	"context"
)

type AffiliateRepository interface {
	//テナント×ユーザーで1件。無ければ nil, nil。
	FindByTenantAndUser(ctx context.Context, tenantID string, userID string) (*model.Affiliate, error)
	Create(ctx context.Context, a *model.Affiliate) error
	IncrementClicks(ctx context.Context, code string) error
}
