package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ShippingUsecase は配送ゾーンの設定。
type ShippingUsecase struct {
	zoneRepo repo.ShippingZoneRepository
	audit    *AuditLogUsecase
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewShippingUsecase(
	zoneRepo repo.ShippingZoneRepository,
	audit *AuditLogUsecase,
	idGen IDGenerator,
	clock Clock,
) *ShippingUsecase {
	return &ShippingUsecase{
		zoneRepo: zoneRepo,
		audit:    audit,
		idGen:    idGen,
		clock:    clock,
	}
}

type ShippingZoneInput struct {
	Name      string
	Countries string
	RatePrice int64
}

func (u *ShippingUsecase) ListZones(ctx context.Context, tenantID string) ([]model.ShippingZone, error) {
	zones, err := u.zoneRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return zones, nil
}

func (u *ShippingUsecase) CreateZone(ctx context.Context, tenantID string, actorUserID string, in ShippingZoneInput) (model.ShippingZone, error) {
	if in.Name == "" {
		return model.ShippingZone{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Countries == "" {
		return model.ShippingZone{}, NewHTTPError(http.StatusBadRequest, "invalid countries")
	}
	if in.RatePrice < 0 {
		return model.ShippingZone{}, NewHTTPError(http.StatusBadRequest, "invalid rate_price")
	}

	now := u.clock.Now()
	created, err := u.zoneRepo.Create(ctx, model.ShippingZone{
		ID:        u.idGen.NewID(),
		TenantID:  tenantID,
		Name:      in.Name,
		Countries: in.Countries,
		RatePrice: in.RatePrice,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.ShippingZone{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after, _ := json.Marshal(created)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionCreateShipping,
		ResourceType: "shipping_zone",
		ResourceID:   created.ID,
		AfterJSON:    string(after),
		CreatedAt:    now,
	})

	return created, nil
}

func (u *ShippingUsecase) DeleteZone(ctx context.Context, tenantID string, actorUserID string, zoneID string) error {
	if err := u.zoneRepo.DeleteByID(ctx, tenantID, zoneID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionDeleteShipping,
		ResourceType: "shipping_zone",
		ResourceID:   zoneID,
		CreatedAt:    u.clock.Now(),
	})

	return nil
}
