package model

import (
	"time"

	"gorm.io/gorm"
)

// テナントごとのブログ記事。
type BlogPost struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID    string         `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string         `gorm:"type:varchar(255);not null;index" json:"slug"`
	Content     string         `gorm:"type:text" json:"content"`
	IsPublished bool           `gorm:"not null;default:false" json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
