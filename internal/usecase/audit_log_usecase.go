package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"go.uber.org/zap"
)

// 1画面に出す件数（ページングなし）。
const auditLogPageSize = 50

// AuditLogUsecase は監査ログの読み書き。
type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
	logger    *zap.Logger
}

// DI
func NewAuditLogUsecase(auditRepo repo.AuditLogRepository, logger *zap.Logger) *AuditLogUsecase {
	return &AuditLogUsecase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// GetAuditLogs はテナントの監査ログを新しい順に最大50件返す。
// 読み取りに失敗しても空スライスを返す（画面を出すことを優先する）。
// エラーはログにだけ残す。
func (u *AuditLogUsecase) GetAuditLogs(ctx context.Context, tenantID string) []repo.AuditLogEntry {
	entries, err := u.auditRepo.ListByTenant(ctx, tenantID, auditLogPageSize)
	if err != nil {
		u.logger.Warn("audit log read failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		return []repo.AuditLogEntry{}
	}

	if entries == nil {
		return []repo.AuditLogEntry{}
	}
	return entries
}

// Record は監査ログを1件追記する。
// 追記失敗で元の操作を失敗させない（ログに残すだけ）。
func (u *AuditLogUsecase) Record(ctx context.Context, log model.AuditLog) {
	if err := u.auditRepo.Create(ctx, log); err != nil {
		u.logger.Warn("audit log write failed",
			zap.String("tenant_id", log.TenantID),
			zap.String("action", string(log.Action)),
			zap.Error(err),
		)
	}
}
