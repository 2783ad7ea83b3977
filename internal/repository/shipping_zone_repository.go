package repository

import (
	"app/internal/domain/model"
	"context"
)

type ShippingZoneRepository interface {
	ListByTenant(ctx context.Context, tenantID string) ([]model.ShippingZone, error)
	Create(ctx context.Context, z model.ShippingZone) (model.ShippingZone, error)
	DeleteByID(ctx context.Context, tenantID string, id string) error
}
