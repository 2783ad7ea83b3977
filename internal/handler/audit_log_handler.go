package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /dashboard/audit-logs のHTTP。
// 読み取りに失敗しても空配列を返す（usecase側で吸収）。
type AuditLogHandler struct {
	uc *usecase.AuditLogUsecase
}

// DI
func NewAuditLogHandler(uc *usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

func (h *AuditLogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/audit-logs", h.list)
}

func (h *AuditLogHandler) list(c echo.Context) error {
	_, tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.uc.GetAuditLogs(c.Request().Context(), tenantID))
}
