package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// テナントの取得・保存を約束。
type TenantRepository interface {
	//slugで1件取得。無ければ nil, nil を返す（エラーにしない）。
	FindBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	FindByID(ctx context.Context, id string) (*model.Tenant, error)

	Create(ctx context.Context, t *model.Tenant) error
	Update(ctx context.Context, t *model.Tenant) error

	//プラットフォーム管理画面用の一覧。
	List(ctx context.Context, page int, limit int) ([]model.Tenant, int64, error)
}
