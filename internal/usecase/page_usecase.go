package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// PageUsecase はストアフロントページの編集。
type PageUsecase struct {
	pageRepo repo.StorePageRepository
	audit    *AuditLogUsecase
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewPageUsecase(
	pageRepo repo.StorePageRepository,
	audit *AuditLogUsecase,
	idGen IDGenerator,
	clock Clock,
) *PageUsecase {
	return &PageUsecase{
		pageRepo: pageRepo,
		audit:    audit,
		idGen:    idGen,
		clock:    clock,
	}
}

type StorePageInput struct {
	Slug    string
	Title   string
	Content string
}

func (u *PageUsecase) ListPages(ctx context.Context, tenantID string) ([]model.StorePage, error) {
	pages, err := u.pageRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return pages, nil
}

// SavePage はページを保存する（同一slugは上書き）。
func (u *PageUsecase) SavePage(ctx context.Context, tenantID string, actorUserID string, in StorePageInput) (model.StorePage, error) {
	if !slugPattern.MatchString(in.Slug) {
		return model.StorePage{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if in.Title == "" {
		return model.StorePage{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}

	saved, err := u.pageRepo.Upsert(ctx, model.StorePage{
		ID:       u.idGen.NewID(),
		TenantID: tenantID,
		Slug:     in.Slug,
		Title:    in.Title,
		Content:  in.Content,
	})
	if err != nil {
		return model.StorePage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after, _ := json.Marshal(saved)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionUpdateStorePage,
		ResourceType: "store_page",
		ResourceID:   saved.ID,
		AfterJSON:    string(after),
		CreatedAt:    u.clock.Now(),
	})

	return saved, nil
}
