package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type auditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) repo.AuditLogRepository {
	return &auditLogGormRepository{db: db}
}

func (r *auditLogGormRepository) Create(ctx context.Context, log model.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(&log).Error; err != nil {
		return err
	}
	return nil
}

// テナントの監査ログを新しい順に取得し、操作者のメールを結合する。
// tenant_idの絞り込みはDB側のポリシーがあっても必ずここでも行う。
func (r *auditLogGormRepository) ListByTenant(ctx context.Context, tenantID string, limit int) ([]repo.AuditLogEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var entries []repo.AuditLogEntry

	err := r.db.WithContext(ctx).
		Table("audit_logs").
		Select("audit_logs.*, users.email as actor_email").
		Joins("left join users on users.id = audit_logs.actor_user_id").
		Where("audit_logs.tenant_id = ?", tenantID).
		Order("audit_logs.created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
