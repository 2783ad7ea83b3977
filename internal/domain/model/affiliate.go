package model

import "time"

// アフィリエイト（テナント×ユーザーで1件）。
type Affiliate struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_affiliates_tenant_user" json:"tenant_id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_affiliates_tenant_user" json:"user_id"`
	Code          string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	ClickCount    int64     `gorm:"not null;default:0" json:"click_count"`
	ReferralCount int64     `gorm:"not null;default:0" json:"referral_count"`

	//確定報酬（最小通貨単位）。
	EarningsTotal int64 `gorm:"not null;default:0" json:"earnings_total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
