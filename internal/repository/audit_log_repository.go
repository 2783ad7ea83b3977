package repository

import (
	"context"

	"app/internal/domain/model"
)

// 監査ログ＋操作者のメールを結合した1行。
type AuditLogEntry struct {
	model.AuditLog
	ActorEmail string `json:"actor_email"`
}

// 監査ログの保存・一覧取得の約束。
type AuditLogRepository interface {
	//監査ログを1件保存
	Create(ctx context.Context, log model.AuditLog) error

	//テナントの新しい順一覧（actor_email結合済み）。
	//limit件まで。tenant_idの絞り込みはRLS任せにせず必ずここで行う。
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]AuditLogEntry, error)
}
