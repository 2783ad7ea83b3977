package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
	repo "app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers は起動時に配線する全ハンドラ。
type Handlers struct {
	Auth       *handler.AuthHandler
	Storefront *handler.StorefrontHandler
	Cart       *handler.CartHandler
	Product    *handler.ProductHandler
	Blog       *handler.BlogHandler
	Page       *handler.PageHandler
	Shipping   *handler.ShippingHandler
	Affiliate  *handler.AffiliateHandler
	AuditLog   *handler.AuditLogHandler
	Admin      *handler.AdminHandler
}

// New はルーティング済みのechoを作る。
func New(cfg config.Config, logger *zap.Logger, tenantRepo repo.TenantRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	//公開: 認証
	h.Auth.RegisterRoutes(e)

	//公開: ストアフロント（テナント解決＋カートセッション）
	store := e.Group("/store/:slug")
	store.Use(middleware.TenantResolver(tenantRepo))
	store.Use(middleware.CartSession())
	h.Storefront.RegisterRoutes(store)
	h.Cart.RegisterRoutes(store)

	//認証必須: オンボーディング（APIなので401を返す）
	authed := e.Group("")
	authed.Use(middleware.AuthJWT(cfg, middleware.AuthJWTConfig{RedirectOnFail: false}))
	h.Auth.RegisterProtectedRoutes(authed)

	//認証必須: ダッシュボード（ページシェルなので302で逃がす）
	dash := e.Group("/dashboard")
	dash.Use(middleware.AuthJWT(cfg, middleware.AuthJWTConfig{RedirectOnFail: true}))
	h.Product.RegisterRoutes(dash)
	h.Blog.RegisterRoutes(dash)
	h.Page.RegisterRoutes(dash)
	h.Shipping.RegisterRoutes(dash)
	h.Affiliate.RegisterRoutes(dash)
	h.AuditLog.RegisterRoutes(dash)

	//ADMINのみ: プラットフォーム管理
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg, middleware.AuthJWTConfig{RedirectOnFail: false}))
	admin.Use(middleware.AdminRoleGuard())
	h.Admin.RegisterRoutes(admin)

	return e
}

// Start は待ち受けを開始する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
