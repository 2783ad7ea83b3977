package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard/affiliates のHTTP
type AffiliateHandler struct {
	uc *usecase.AffiliateUsecase
}

// DI
func NewAffiliateHandler(uc *usecase.AffiliateUsecase) *AffiliateHandler {
	return &AffiliateHandler{uc: uc}
}

func (h *AffiliateHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/affiliates", h.dashboard)
}

// 初回アクセスでアフィリエイトを作って返す。
func (h *AffiliateHandler) dashboard(c echo.Context) error {
	userID, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	a, err := h.uc.GetOrCreate(c.Request().Context(), tenantID, userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, a)
}
