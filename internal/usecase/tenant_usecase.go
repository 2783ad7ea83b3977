package usecase

import (
	"context"
	"net/http"
	"regexp"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// TenantUsecase はオンボーディングとプラットフォーム管理のテナント操作。
type TenantUsecase struct {
	tenantRepo repo.TenantRepository
	userRepo   repo.UserRepository
	idGen      IDGenerator
	clock      Clock
}

// DI
func NewTenantUsecase(
	tenantRepo repo.TenantRepository,
	userRepo repo.UserRepository,
	idGen IDGenerator,
	clock Clock,
) *TenantUsecase {
	return &TenantUsecase{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		clock:      clock,
	}
}

type OnboardInput struct {
	Name string
	Slug string
}

// Onboard は新しいストアを作ってユーザーをOWNERとして所属させる。
// すでにテナント所属ならエラー。
func (u *TenantUsecase) Onboard(ctx context.Context, userID string, in OnboardInput) (*model.Tenant, error) {
	if in.Name == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if !slugPattern.MatchString(in.Slug) || len(in.Slug) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if user.TenantID != "" {
		return nil, NewHTTPError(http.StatusConflict, "already onboarded")
	}

	//slug重複チェック
	existing, err := u.tenantRepo.FindBySlug(ctx, in.Slug)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return nil, NewHTTPError(http.StatusConflict, "slug already taken")
	}

	now := u.clock.Now()
	tenant := model.Tenant{
		ID:        u.idGen.NewID(),
		Slug:      in.Slug,
		Name:      in.Name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.tenantRepo.Create(ctx, &tenant); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.TenantID = tenant.ID
	user.Role = model.RoleOwner
	user.UpdatedAt = now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return &tenant, nil
}

type TenantListOutput struct {
	Items []model.Tenant `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ListTenants はプラットフォーム管理画面のテナント一覧。
func (u *TenantUsecase) ListTenants(ctx context.Context, page int, limit int) (TenantListOutput, error) {
	if page < 1 {
		return TenantListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return TenantListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.tenantRepo.List(ctx, page, limit)
	if err != nil {
		return TenantListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TenantListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
