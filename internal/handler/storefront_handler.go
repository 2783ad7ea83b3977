package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (string, bool) {
	userID, ok := c.Get(middleware.CtxUserIDKey).(string)
	return userID, ok && userID != ""
}

// AuthJWTが入れたtenant_idを取り出す（空なら未オンボーディング）
func getTenantIDFromContext(c echo.Context) (string, bool) {
	tenantID, ok := c.Get(middleware.CtxTenantIDKey).(string)
	return tenantID, ok && tenantID != ""
}

// /store/:slug の公開ストアフロント。
type StorefrontHandler struct {
	uc          *usecase.StorefrontUsecase
	affiliateUC *usecase.AffiliateUsecase
}

// DI
func NewStorefrontHandler(uc *usecase.StorefrontUsecase, affiliateUC *usecase.AffiliateUsecase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc, affiliateUC: affiliateUC}
}

// 公開ストアのルートを登録（テナント解決ミドルウェア込み）。
func (h *StorefrontHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.storefront)
	g.GET("/pages/:pageSlug", h.page)
	g.GET("/blog", h.blog)
}

// slugをリクエスト内メモ化Resolverで解決する。
// 見つからなければ nil（呼び出し側が404を返す）。
func resolveTenant(c echo.Context) (*usecase.TenantResolver, error) {
	r, ok := middleware.ResolverFromContext(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return r, nil
}

func (h *StorefrontHandler) storefront(c echo.Context) error {
	r, err := resolveTenant(c)
	if err != nil {
		return writeError(c, err)
	}

	tenant, err := r.GetTenant(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if tenant == nil || !tenant.IsActive {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
	}

	//紹介リンク経由ならクリックを記録（失敗しても表示は続ける）
	if ref := c.QueryParam("ref"); ref != "" {
		h.affiliateUC.TrackClick(c.Request().Context(), ref)
	}

	out, err := h.uc.GetStorefront(c.Request().Context(), tenant)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StorefrontHandler) page(c echo.Context) error {
	r, err := resolveTenant(c)
	if err != nil {
		return writeError(c, err)
	}

	tenant, err := r.GetTenant(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if tenant == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
	}

	p, err := h.uc.GetStorePage(c.Request().Context(), tenant.ID, c.Param("pageSlug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *StorefrontHandler) blog(c echo.Context) error {
	r, err := resolveTenant(c)
	if err != nil {
		return writeError(c, err)
	}

	tenant, err := r.GetTenant(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if tenant == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
	}

	posts, err := h.uc.ListPublishedPosts(c.Request().Context(), tenant.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, posts)
}
