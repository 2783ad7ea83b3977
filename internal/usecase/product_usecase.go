package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductUsecase はダッシュボードの商品管理。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	audit       *AuditLogUsecase
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	audit *AuditLogUsecase,
	idGen IDGenerator,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		audit:       audit,
		idGen:       idGen,
		clock:       clock,
	}
}

type ProductInput struct {
	Title       string
	Description string
	Price       int64
	ImageURL    string
	IsActive    bool
}

func (u *ProductUsecase) ListProducts(ctx context.Context, tenantID string) ([]model.Product, error) {
	products, err := u.productRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, tenantID string, actorUserID string, in ProductInput) (model.Product, error) {
	if in.Title == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	now := u.clock.Now()
	product := model.Product{
		ID:          u.idGen.NewID(),
		TenantID:    tenantID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.productRepo.Create(ctx, product)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after, _ := json.Marshal(created)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionCreateProduct,
		ResourceType: "product",
		ResourceID:   created.ID,
		AfterJSON:    string(after),
		CreatedAt:    now,
	})

	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, tenantID string, actorUserID string, productID string, in ProductInput) (model.Product, error) {
	if in.Title == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	before, err := u.productRepo.FindByID(ctx, tenantID, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated := before
	updated.Title = in.Title
	updated.Description = in.Description
	updated.Price = in.Price
	updated.ImageURL = in.ImageURL
	updated.IsActive = in.IsActive

	if err := u.productRepo.Update(ctx, updated); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(updated)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionUpdateProduct,
		ResourceType: "product",
		ResourceID:   productID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    u.clock.Now(),
	})

	return updated, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, tenantID string, actorUserID string, productID string) error {
	if err := u.productRepo.SoftDelete(ctx, tenantID, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionDeleteProduct,
		ResourceType: "product",
		ResourceID:   productID,
		CreatedAt:    u.clock.Now(),
	})

	return nil
}
