package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /auth と /onboarding のHTTP。
type AuthHandler struct {
	authUC   *usecase.AuthUsecase
	tenantUC *usecase.TenantUsecase
}

// DI
func NewAuthHandler(authUC *usecase.AuthUsecase, tenantUC *usecase.TenantUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC, tenantUC: tenantUC}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type onboardRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// 公開ルート（/auth/...）を登録。
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
}

// 認証必須ルート（/onboarding）を登録。
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/onboarding", h.onboard)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case usecase.ErrInvalidEmailFormat, usecase.ErrPasswordTooShort:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
		case usecase.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict"})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 新しいストアを作る。成功後は再ログインでtenant_id入りトークンを取り直す。
func (h *AuthHandler) onboard(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req onboardRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	tenant, err := h.tenantUC.Onboard(c.Request().Context(), userID, usecase.OnboardInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, tenant)
}
