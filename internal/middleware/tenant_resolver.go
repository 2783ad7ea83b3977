package middleware

import (
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

const CtxTenantResolverKey = "tenant_resolver" // *usecase.TenantResolver

// TenantResolver はリクエストごとに新しいResolverを作ってcontextに入れる。
// メモはリクエストの外に持ち出さない（並行リクエスト間で共有しない）。
func TenantResolver(tenantRepo repo.TenantRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(CtxTenantResolverKey, usecase.NewTenantResolver(tenantRepo))
			return next(c)
		}
	}
}

// ResolverFromContext はリクエストのResolverを取り出す。
func ResolverFromContext(c echo.Context) (*usecase.TenantResolver, bool) {
	r, ok := c.Get(CtxTenantResolverKey).(*usecase.TenantResolver)
	return r, ok
}
