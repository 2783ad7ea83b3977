package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AffiliateUsecase はアフィリエイトダッシュボード。
type AffiliateUsecase struct {
	affiliateRepo repo.AffiliateRepository
	audit         *AuditLogUsecase
	idGen         IDGenerator
	clock         Clock
}

// DI
func NewAffiliateUsecase(
	affiliateRepo repo.AffiliateRepository,
	audit *AuditLogUsecase,
	idGen IDGenerator,
	clock Clock,
) *AffiliateUsecase {
	return &AffiliateUsecase{
		affiliateRepo: affiliateRepo,
		audit:         audit,
		idGen:         idGen,
		clock:         clock,
	}
}

// GetOrCreate はユーザーのアフィリエイトを返す。初回アクセスで作る。
func (u *AffiliateUsecase) GetOrCreate(ctx context.Context, tenantID string, userID string) (*model.Affiliate, error) {
	existing, err := u.affiliateRepo.FindByTenantAndUser(ctx, tenantID, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return existing, nil
	}

	now := u.clock.Now()
	a := model.Affiliate{
		ID:        u.idGen.NewID(),
		TenantID:  tenantID,
		UserID:    userID,
		Code:      newAffiliateCode(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.affiliateRepo.Create(ctx, &a); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  userID,
		Action:       model.AuditActionCreateAffiliate,
		ResourceType: "affiliate",
		ResourceID:   a.ID,
		CreatedAt:    now,
	})

	return &a, nil
}

// TrackClick は紹介リンクのクリックを記録する。
// 存在しないコードでもエラーにしない（リンク先の表示を優先）。
func (u *AffiliateUsecase) TrackClick(ctx context.Context, code string) {
	if code == "" {
		return
	}
	_ = u.affiliateRepo.IncrementClicks(ctx, code)
}

// 8バイト乱数の16進コード。
func newAffiliateCode() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
