package usecase

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// BlogUsecase はダッシュボードのブログ編集。
type BlogUsecase struct {
	blogRepo repo.BlogPostRepository
	audit    *AuditLogUsecase
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewBlogUsecase(
	blogRepo repo.BlogPostRepository,
	audit *AuditLogUsecase,
	idGen IDGenerator,
	clock Clock,
) *BlogUsecase {
	return &BlogUsecase{
		blogRepo: blogRepo,
		audit:    audit,
		idGen:    idGen,
		clock:    clock,
	}
}

type BlogPostInput struct {
	Title       string
	Slug        string
	Content     string
	IsPublished bool
}

func (u *BlogUsecase) ListPosts(ctx context.Context, tenantID string) ([]model.BlogPost, error) {
	posts, err := u.blogRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return posts, nil
}

func (u *BlogUsecase) CreatePost(ctx context.Context, tenantID string, actorUserID string, in BlogPostInput) (model.BlogPost, error) {
	if in.Title == "" {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}

	now := u.clock.Now()
	post := model.BlogPost{
		ID:          u.idGen.NewID(),
		TenantID:    tenantID,
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsPublished {
		post.PublishedAt = &now
	}

	created, err := u.blogRepo.Create(ctx, post)
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after, _ := json.Marshal(created)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionCreateBlogPost,
		ResourceType: "blog_post",
		ResourceID:   created.ID,
		AfterJSON:    string(after),
		CreatedAt:    now,
	})

	return created, nil
}

func (u *BlogUsecase) UpdatePost(ctx context.Context, tenantID string, actorUserID string, postID string, in BlogPostInput) (model.BlogPost, error) {
	if in.Title == "" {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid title")
	}

	before, err := u.blogRepo.FindByID(ctx, tenantID, postID)
	if err == repo.ErrNotFound {
		return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	updated := before
	updated.Title = in.Title
	updated.Slug = in.Slug
	updated.Content = in.Content
	updated.IsPublished = in.IsPublished
	if in.IsPublished && before.PublishedAt == nil {
		updated.PublishedAt = &now
	}

	if err := u.blogRepo.Update(ctx, updated); err != nil {
		if err == repo.ErrNotFound {
			return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(updated)
	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionUpdateBlogPost,
		ResourceType: "blog_post",
		ResourceID:   postID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    now,
	})

	return updated, nil
}

func (u *BlogUsecase) DeletePost(ctx context.Context, tenantID string, actorUserID string, postID string) error {
	if err := u.blogRepo.SoftDelete(ctx, tenantID, postID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit.Record(ctx, model.AuditLog{
		ID:           u.idGen.NewID(),
		TenantID:     tenantID,
		ActorUserID:  actorUserID,
		Action:       model.AuditActionDeleteBlogPost,
		ResourceType: "blog_post",
		ResourceID:   postID,
		CreatedAt:    u.clock.Now(),
	})

	return nil
}
