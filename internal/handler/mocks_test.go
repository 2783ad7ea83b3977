package handler_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type TenantRepoMock struct{ mock.Mock }

func (m *TenantRepoMock) FindBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	args := m.Called(ctx, slug)
	t, _ := args.Get(0).(*model.Tenant)
	return t, args.Error(1)
}

func (m *TenantRepoMock) FindByID(ctx context.Context, id string) (*model.Tenant, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Tenant)
	return t, args.Error(1)
}

func (m *TenantRepoMock) Create(ctx context.Context, t *model.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TenantRepoMock) Update(ctx context.Context, t *model.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TenantRepoMock) List(ctx context.Context, page int, limit int) ([]model.Tenant, int64, error) {
	args := m.Called(ctx, page, limit)
	items, _ := args.Get(0).([]model.Tenant)
	return items, args.Get(1).(int64), args.Error(2)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListByTenant(ctx context.Context, tenantID string) ([]model.Product, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListActiveByTenant(ctx context.Context, tenantID string) ([]model.Product, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, tenantID string, id string) (model.Product, error) {
	args := m.Called(ctx, tenantID, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, tenantID string, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type BlogRepoMock struct{ mock.Mock }

func (m *BlogRepoMock) ListByTenant(ctx context.Context, tenantID string) ([]model.BlogPost, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]model.BlogPost)
	return items, args.Error(1)
}

func (m *BlogRepoMock) FindByID(ctx context.Context, tenantID string, id string) (model.BlogPost, error) {
	args := m.Called(ctx, tenantID, id)
	p, _ := args.Get(0).(model.BlogPost)
	return p, args.Error(1)
}

func (m *BlogRepoMock) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.BlogPost)
	return created, args.Error(1)
}

func (m *BlogRepoMock) Update(ctx context.Context, p model.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *BlogRepoMock) SoftDelete(ctx context.Context, tenantID string, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type PageRepoMock struct{ mock.Mock }

func (m *PageRepoMock) ListByTenant(ctx context.Context, tenantID string) ([]model.StorePage, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]model.StorePage)
	return items, args.Error(1)
}

func (m *PageRepoMock) FindBySlug(ctx context.Context, tenantID string, slug string) (model.StorePage, error) {
	args := m.Called(ctx, tenantID, slug)
	p, _ := args.Get(0).(model.StorePage)
	return p, args.Error(1)
}

func (m *PageRepoMock) Upsert(ctx context.Context, p model.StorePage) (model.StorePage, error) {
	args := m.Called(ctx, p)
	saved, _ := args.Get(0).(model.StorePage)
	return saved, args.Error(1)
}

type ZoneRepoMock struct{ mock.Mock }

func (m *ZoneRepoMock) ListByTenant(ctx context.Context, tenantID string) ([]model.ShippingZone, error) {
	args := m.Called(ctx, tenantID)
	items, _ := args.Get(0).([]model.ShippingZone)
	return items, args.Error(1)
}

func (m *ZoneRepoMock) Create(ctx context.Context, z model.ShippingZone) (model.ShippingZone, error) {
	args := m.Called(ctx, z)
	created, _ := args.Get(0).(model.ShippingZone)
	return created, args.Error(1)
}

func (m *ZoneRepoMock) DeleteByID(ctx context.Context, tenantID string, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type AffiliateRepoMock struct{ mock.Mock }

func (m *AffiliateRepoMock) FindByTenantAndUser(ctx context.Context, tenantID string, userID string) (*model.Affiliate, error) {
	args := m.Called(ctx, tenantID, userID)
	a, _ := args.Get(0).(*model.Affiliate)
	return a, args.Error(1)
}

func (m *AffiliateRepoMock) Create(ctx context.Context, a *model.Affiliate) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AffiliateRepoMock) IncrementClicks(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) ListByTenant(ctx context.Context, tenantID string, limit int) ([]repo.AuditLogEntry, error) {
	args := m.Called(ctx, tenantID, limit)
	entries, _ := args.Get(0).([]repo.AuditLogEntry)
	return entries, args.Error(1)
}
