package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin のプラットフォーム管理API（ADMINのみ）。
type AdminHandler struct {
	tenantUC *usecase.TenantUsecase
	auditUC  *usecase.AuditLogUsecase
}

// DI
func NewAdminHandler(tenantUC *usecase.TenantUsecase, auditUC *usecase.AuditLogUsecase) *AdminHandler {
	return &AdminHandler{tenantUC: tenantUC, auditUC: auditUC}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tenants", h.listTenants)
	g.GET("/tenants/:id/audit-logs", h.tenantAuditLogs)
}

func (h *AdminHandler) listTenants(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.tenantUC.ListTenants(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 任意テナントの監査ログを見る（プラットフォーム管理者用）。
func (h *AdminHandler) tenantAuditLogs(c echo.Context) error {
	return c.JSON(http.StatusOK, h.auditUC.GetAuditLogs(c.Request().Context(), c.Param("id")))
}
