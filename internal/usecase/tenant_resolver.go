package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// TenantResolver はslug→テナントの解決を1リクエスト分だけメモ化する。
// リクエストごとにNewTenantResolverで作り直すこと。
// リクエストをまたいで共有すると別ユーザーの描画に他テナントが漏れる。
type TenantResolver struct {
	tenantRepo repo.TenantRepository
	memo       map[string]*model.Tenant
}

// リクエスト処理の入口（ミドルウェア）で1つ作る。
func NewTenantResolver(tenantRepo repo.TenantRepository) *TenantResolver {
	return &TenantResolver{
		tenantRepo: tenantRepo,
		memo:       make(map[string]*model.Tenant),
	}
}

// GetTenant はslugでテナントを引く。
// 見つからない場合は nil, nil（呼び出し側がリダイレクトや404を決める）。
// 同じslugの2回目以降はDBに行かない。
func (r *TenantResolver) GetTenant(ctx context.Context, slug string) (*model.Tenant, error) {
	if t, ok := r.memo[slug]; ok {
		return t, nil
	}

	t, err := r.tenantRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	//見つからなかった事実もメモ化する（nilを保存）
	r.memo[slug] = t
	return t, nil
}
