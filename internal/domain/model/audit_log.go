package model

import "time"

// ダッシュボード操作の種類。
type AuditAction string

const (
	AuditActionCreateProduct   AuditAction = "CREATE_PRODUCT"
	AuditActionUpdateProduct   AuditAction = "UPDATE_PRODUCT"
	AuditActionDeleteProduct   AuditAction = "DELETE_PRODUCT"
	AuditActionCreateBlogPost  AuditAction = "CREATE_BLOG_POST"
	AuditActionUpdateBlogPost  AuditAction = "UPDATE_BLOG_POST"
	AuditActionDeleteBlogPost  AuditAction = "DELETE_BLOG_POST"
	AuditActionUpdateStorePage AuditAction = "UPDATE_STORE_PAGE"
	AuditActionCreateShipping  AuditAction = "CREATE_SHIPPING_ZONE"
	AuditActionDeleteShipping  AuditAction = "DELETE_SHIPPING_ZONE"
	AuditActionCreateAffiliate AuditAction = "CREATE_AFFILIATE"
	AuditActionUpdateTenant    AuditAction = "UPDATE_TENANT"
)

// 監査ログ（追記専用）。
// 「誰が」「どのテナントで」「何をしたか」を残す。
type AuditLog struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID    string      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ActorUserID string      `gorm:"type:uuid;not null;index" json:"actor_user_id"`
	Action      AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//対象のIDと種類（blog_post / store_page など）。
	ResourceType string `gorm:"type:varchar(50)" json:"resource_type"`
	ResourceID   string `gorm:"type:uuid" json:"resource_id"`

	//変更前後をJSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
