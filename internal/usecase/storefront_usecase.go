package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// StorefrontUsecase はストアフロントの公開読み取り。
type StorefrontUsecase struct {
	productRepo repo.ProductRepository
	pageRepo    repo.StorePageRepository
	blogRepo    repo.BlogPostRepository
}

// DI
func NewStorefrontUsecase(
	productRepo repo.ProductRepository,
	pageRepo repo.StorePageRepository,
	blogRepo repo.BlogPostRepository,
) *StorefrontUsecase {
	return &StorefrontUsecase{
		productRepo: productRepo,
		pageRepo:    pageRepo,
		blogRepo:    blogRepo,
	}
}

type StorefrontOutput struct {
	Tenant   *model.Tenant   `json:"tenant"`
	Products []model.Product `json:"products"`
}

// GetStorefront はストアのトップ（テナント情報＋公開商品）。
func (u *StorefrontUsecase) GetStorefront(ctx context.Context, tenant *model.Tenant) (StorefrontOutput, error) {
	products, err := u.productRepo.ListActiveByTenant(ctx, tenant.ID)
	if err != nil {
		return StorefrontOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return StorefrontOutput{Tenant: tenant, Products: products}, nil
}

// GetStorePage は編集可能ページの公開表示。
func (u *StorefrontUsecase) GetStorePage(ctx context.Context, tenantID string, slug string) (model.StorePage, error) {
	p, err := u.pageRepo.FindBySlug(ctx, tenantID, slug)
	if err == repo.ErrNotFound {
		return model.StorePage{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.StorePage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// ListPublishedPosts は公開済みブログ記事の一覧。
func (u *StorefrontUsecase) ListPublishedPosts(ctx context.Context, tenantID string) ([]model.BlogPost, error) {
	posts, err := u.blogRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	published := make([]model.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished {
			published = append(published, p)
		}
	}
	return published, nil
}
