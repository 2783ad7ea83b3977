package main

import (
	"time"

	"app/internal/cart"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(userID string, role model.Role, tenantID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":       userID,
		"role":      string(role),
		"tenant_id": tenantID,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if cfg.GoEnv == "dev" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.Product{},
		&model.BlogPost{},
		&model.StorePage{},
		&model.ShippingZone{},
		&model.Affiliate{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	tenantRepo := infraRepo.NewTenantGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	blogRepo := infraRepo.NewBlogPostGormRepository(gormDB)
	pageRepo := infraRepo.NewStorePageGormRepository(gormDB)
	zoneRepo := infraRepo.NewShippingZoneGormRepository(gormDB)
	affiliateRepo := infraRepo.NewAffiliateGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	auditUC := usecase.NewAuditLogUsecase(auditRepo, logger)
	authUC := usecase.NewAuthUsecase(userRepo, issuer, idGen, clock)
	tenantUC := usecase.NewTenantUsecase(tenantRepo, userRepo, idGen, clock)
	storefrontUC := usecase.NewStorefrontUsecase(productRepo, pageRepo, blogRepo)
	cartUC := usecase.NewCartUsecase(productRepo)
	productUC := usecase.NewProductUsecase(productRepo, auditUC, idGen, clock)
	blogUC := usecase.NewBlogUsecase(blogRepo, auditUC, idGen, clock)
	pageUC := usecase.NewPageUsecase(pageRepo, auditUC, idGen, clock)
	shippingUC := usecase.NewShippingUsecase(zoneRepo, auditUC, idGen, clock)
	affiliateUC := usecase.NewAffiliateUsecase(affiliateRepo, auditUC, idGen, clock)

	//セッションカート置き場（プロセス内）
	sessions := cart.NewSessionStore()

	//Handler生成
	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC, tenantUC),
		Storefront: handler.NewStorefrontHandler(storefrontUC, affiliateUC),
		Cart:       handler.NewCartHandler(cartUC, sessions),
		Product:    handler.NewProductHandler(productUC),
		Blog:       handler.NewBlogHandler(blogUC),
		Page:       handler.NewPageHandler(pageUC),
		Shipping:   handler.NewShippingHandler(shippingUC),
		Affiliate:  handler.NewAffiliateHandler(affiliateUC),
		AuditLog:   handler.NewAuditLogHandler(auditUC),
		Admin:      handler.NewAdminHandler(tenantUC, auditUC),
	}

	//Server起動
	e := server.New(cfg, logger, tenantRepo, handlers)

	addr := ":" + cfg.Port
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
