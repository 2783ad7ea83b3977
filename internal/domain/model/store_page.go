package model

import "time"

// ストアフロントの編集可能ページ（about / faq など）。
// テナント内でslugは一意。
type StorePage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_store_pages_tenant_slug" json:"tenant_id"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_store_pages_tenant_slug" json:"slug"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
