package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ダッシュボードの共通ガード。
// 未認証は /login、テナント未所属は /onboarding へ302。
func requireTenant(c echo.Context) (userID string, tenantID string, err error) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return "", "", c.Redirect(http.StatusFound, "/login")
	}

	tenantID, ok = getTenantIDFromContext(c)
	if !ok {
		return "", "", c.Redirect(http.StatusFound, "/onboarding")
	}

	return userID, tenantID, nil
}

// /dashboard/blog のHTTP
type BlogHandler struct {
	uc *usecase.BlogUsecase
}

// DI
func NewBlogHandler(uc *usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

type BlogPostRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

func (h *BlogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/blog", h.list)
	g.POST("/blog", h.create)
	g.PUT("/blog/:id", h.update)
	g.DELETE("/blog/:id", h.remove)
}

func (h *BlogHandler) list(c echo.Context) error {
	_, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	posts, err := h.uc.ListPosts(c.Request().Context(), tenantID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) create(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	post, err := h.uc.CreatePost(c.Request().Context(), tenantID, userID, usecase.BlogPostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) update(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), tenantID, userID, c.Param("id"), usecase.BlogPostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) remove(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeletePost(c.Request().Context(), tenantID, userID, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
