package model

import "time"

// 1テナント＝1ストアフロント。
// slugはURLで使う（/store/:slug）。
type Tenant struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	LogoURL   string    `gorm:"type:text" json:"logo_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
