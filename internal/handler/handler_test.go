package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/cart"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testSecret = "test_secret_for_handler_tests"

// テスト用の全リポジトリ。
type testRepos struct {
	tenant    *TenantRepoMock
	user      *UserRepoMock
	product   *ProductRepoMock
	blog      *BlogRepoMock
	page      *PageRepoMock
	zone      *ZoneRepoMock
	affiliate *AffiliateRepoMock
	audit     *AuditRepoMock
}

func newTestRepos() *testRepos {
	return &testRepos{
		tenant:    new(TenantRepoMock),
		user:      new(UserRepoMock),
		product:   new(ProductRepoMock),
		blog:      new(BlogRepoMock),
		page:      new(PageRepoMock),
		zone:      new(ZoneRepoMock),
		affiliate: new(AffiliateRepoMock),
		audit:     new(AuditRepoMock),
	}
}

type testIDGen struct{}

func (g *testIDGen) NewID() string { return "fixed-id" }

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

type testIssuer struct{}

func (i *testIssuer) Issue(userID string, role model.Role, tenantID string, now time.Time) (string, time.Time, error) {
	return "tok", now.Add(time.Minute), nil
}

// 本番と同じ配線のechoを作る。
func newTestServer(r *testRepos) *echo.Echo {
	cfg := config.Config{Port: "0", JWTSecret: testSecret, GoEnv: "dev"}

	idGen := &testIDGen{}
	clock := &testClock{}
	logger := zap.NewNop()

	auditUC := usecase.NewAuditLogUsecase(r.audit, logger)
	authUC := usecase.NewAuthUsecase(r.user, &testIssuer{}, idGen, clock)
	tenantUC := usecase.NewTenantUsecase(r.tenant, r.user, idGen, clock)
	storefrontUC := usecase.NewStorefrontUsecase(r.product, r.page, r.blog)
	cartUC := usecase.NewCartUsecase(r.product)
	productUC := usecase.NewProductUsecase(r.product, auditUC, idGen, clock)
	blogUC := usecase.NewBlogUsecase(r.blog, auditUC, idGen, clock)
	pageUC := usecase.NewPageUsecase(r.page, auditUC, idGen, clock)
	shippingUC := usecase.NewShippingUsecase(r.zone, auditUC, idGen, clock)
	affiliateUC := usecase.NewAffiliateUsecase(r.affiliate, auditUC, idGen, clock)

	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC, tenantUC),
		Storefront: handler.NewStorefrontHandler(storefrontUC, affiliateUC),
		Cart:       handler.NewCartHandler(cartUC, cart.NewSessionStore()),
		Product:    handler.NewProductHandler(productUC),
		Blog:       handler.NewBlogHandler(blogUC),
		Page:       handler.NewPageHandler(pageUC),
		Shipping:   handler.NewShippingHandler(shippingUC),
		Affiliate:  handler.NewAffiliateHandler(affiliateUC),
		AuditLog:   handler.NewAuditLogHandler(auditUC),
		Admin:      handler.NewAdminHandler(tenantUC, auditUC),
	}

	return server.New(cfg, logger, r.tenant, handlers)
}

// HS256トークンを発行する。tenantID空なら未オンボーディング。
func signToken(t *testing.T, userID string, role string, tenantID string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":       userID,
		"role":      role,
		"tenant_id": tenantID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDashboard_NoToken_RedirectsToLogin(t *testing.T) {
	e := newTestServer(newTestRepos())

	req := httptest.NewRequest(http.MethodGet, "/dashboard/blog", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDashboard_NoTenant_RedirectsToOnboarding(t *testing.T) {
	e := newTestServer(newTestRepos())

	req := httptest.NewRequest(http.MethodGet, "/dashboard/blog", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "USER", ""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/onboarding", rec.Header().Get("Location"))
}

func TestDashboard_Blog_ListOK(t *testing.T) {
	r := newTestRepos()
	r.blog.On("ListByTenant", mock.Anything, "t1").
		Return([]model.BlogPost{{ID: "b1", TenantID: "t1", Title: "Hello"}}, nil)

	e := newTestServer(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/blog", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "OWNER", "t1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var posts []model.BlogPost
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Equal(t, 1, len(posts))
	assert.Equal(t, "Hello", posts[0].Title)
}

// 商品作成は監査ログも書く。
func TestDashboard_Products_CreateWritesAuditLog(t *testing.T) {
	r := newTestRepos()
	r.product.On("Create", mock.Anything, mock.AnythingOfType("model.Product")).
		Return(model.Product{ID: "fixed-id", TenantID: "t1", Title: "Shirt", Price: 20}, nil)
	r.audit.On("Create", mock.Anything, mock.AnythingOfType("model.AuditLog")).
		Return(nil)

	e := newTestServer(r)

	body := strings.NewReader(`{"title":"Shirt","price":20,"is_active":true}`)
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "OWNER", "t1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	r.audit.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("model.AuditLog"))

	var p model.Product
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "t1", p.TenantID)
}

func TestDashboard_Products_CreateRejectsNegativePrice(t *testing.T) {
	e := newTestServer(newTestRepos())

	body := strings.NewReader(`{"title":"Shirt","price":-1}`)
	req := httptest.NewRequest(http.MethodPost, "/dashboard/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "OWNER", "t1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorefront_UnknownSlug_NotFound(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("FindBySlug", mock.Anything, "nonexistent-slug").
		Return((*model.Tenant)(nil), nil)

	e := newTestServer(r)

	req := httptest.NewRequest(http.MethodGet, "/store/nonexistent-slug", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStorefront_ListsActiveProducts(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("FindBySlug", mock.Anything, "shop").
		Return(&model.Tenant{ID: "t1", Slug: "shop", IsActive: true}, nil)
	r.product.On("ListActiveByTenant", mock.Anything, "t1").
		Return([]model.Product{{ID: "p1", TenantID: "t1", Title: "Shirt", Price: 20, IsActive: true}}, nil)

	e := newTestServer(r)

	req := httptest.NewRequest(http.MethodGet, "/store/shop", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.StorefrontOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "t1", out.Tenant.ID)
	assert.Equal(t, 1, len(out.Products))
}

// カート追加→取得をcookie付きで通しで確認する。
func TestCart_AddAndGet_UsesSessionCookie(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("FindBySlug", mock.Anything, "shop").
		Return(&model.Tenant{ID: "t1", Slug: "shop", IsActive: true}, nil)
	r.product.On("FindByID", mock.Anything, "t1", "p1").
		Return(model.Product{ID: "p1", TenantID: "t1", Title: "Shirt", Price: 20, IsActive: true}, nil)

	e := newTestServer(r)

	//1回目の追加（cookieが発行される）
	body := strings.NewReader(`{"product_id":"p1"}`)
	req := httptest.NewRequest(http.MethodPost, "/store/shop/cart/items", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "cart_session" {
			sessionCookie = ck
		}
	}
	assert.NotNil(t, sessionCookie)

	//2回目の追加（同じセッション）
	body = strings.NewReader(`{"product_id":"p1"}`)
	req = httptest.NewRequest(http.MethodPost, "/store/shop/cart/items", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	//取得して合計を確認
	req = httptest.NewRequest(http.MethodGet, "/store/shop/cart", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CartResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(2), out.TotalItems)
	assert.Equal(t, int64(40), out.Subtotal)
}

// DELETE /cart はセッションのカートを破棄する。
func TestCart_ClearDiscardsSessionCart(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("FindBySlug", mock.Anything, "shop").
		Return(&model.Tenant{ID: "t1", Slug: "shop", IsActive: true}, nil)
	r.product.On("FindByID", mock.Anything, "t1", "p1").
		Return(model.Product{ID: "p1", TenantID: "t1", Title: "Shirt", Price: 20, IsActive: true}, nil)

	e := newTestServer(r)

	body := strings.NewReader(`{"product_id":"p1"}`)
	req := httptest.NewRequest(http.MethodPost, "/store/shop/cart/items", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var sessionCookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "cart_session" {
			sessionCookie = ck
		}
	}
	assert.NotNil(t, sessionCookie)

	//破棄
	req = httptest.NewRequest(http.MethodDelete, "/store/shop/cart", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	//同じセッションで取り直すと空カート
	req = httptest.NewRequest(http.MethodGet, "/store/shop/cart", nil)
	req.AddCookie(sessionCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out usecase.CartResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(0), out.TotalItems)
	assert.Equal(t, 0, len(out.Items))
}

// 別セッション（cookieなし）は空カート。
func TestCart_SeparateSessionsDoNotShareCart(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("FindBySlug", mock.Anything, "shop").
		Return(&model.Tenant{ID: "t1", Slug: "shop", IsActive: true}, nil)
	r.product.On("FindByID", mock.Anything, "t1", "p1").
		Return(model.Product{ID: "p1", TenantID: "t1", Title: "Shirt", Price: 20, IsActive: true}, nil)

	e := newTestServer(r)

	body := strings.NewReader(`{"product_id":"p1"}`)
	req := httptest.NewRequest(http.MethodPost, "/store/shop/cart/items", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	//cookieを持たないリクエスト→新しい空カート
	req = httptest.NewRequest(http.MethodGet, "/store/shop/cart", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out usecase.CartResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(0), out.TotalItems)
}

func TestAdmin_Tenants_ForbiddenForNonAdmin(t *testing.T) {
	e := newTestServer(newTestRepos())

	req := httptest.NewRequest(http.MethodGet, "/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "OWNER", "t1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdmin_Tenants_OKForAdmin(t *testing.T) {
	r := newTestRepos()
	r.tenant.On("List", mock.Anything, 1, 20).
		Return([]model.Tenant{{ID: "t1", Slug: "shop"}}, int64(1), nil)

	e := newTestServer(r)

	req := httptest.NewRequest(http.MethodGet, "/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin1", "ADMIN", ""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.TenantListOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.Total)
}

// 監査ログ読み取り失敗は空配列（500にならない）。
func TestDashboard_AuditLogs_FailureYieldsEmptyArray(t *testing.T) {
	r := newTestRepos()
	r.audit.On("ListByTenant", mock.Anything, "t1", 50).
		Return(nil, assert.AnError)

	e := newTestServer(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "OWNER", "t1"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
