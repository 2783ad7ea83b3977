package middleware

import (
	"errors"
	"net/http"
	"strings"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey   = "user_id"   // string (uuid)
	CtxUserRoleKey = "user_role" // string
	CtxTenantIDKey = "tenant_id" // string (空なら未オンボーディング)
)

// bearerAuth用のJWT検証ミドルウェア。
// 未認証はJSONの401ではなく /login へ302（ページシェル用）。
// APIとして401が欲しい場合は RedirectOnFail=false で使う。
type AuthJWTConfig struct {
	RedirectOnFail bool
}

func AuthJWT(cfg config.Config, authCfg AuthJWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fail := func() error {
				if authCfg.RedirectOnFail {
					return c.Redirect(http.StatusFound, "/login")
				}
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return fail()
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return fail()
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return fail()
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return fail()
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return fail()
			}

			//user_id(sub)を取り出す
			userID, err := parseString(claims["sub"])
			if err != nil || userID == "" {
				return fail()
			}

			//roleを取り出す（USER/OWNER/ADMIN）
			role, err := parseString(claims["role"])
			if err != nil || role == "" {
				return fail()
			}

			//tenant_idは空を許す（未オンボーディング）
			tenantID, _ := parseString(claims["tenant_id"])

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserRoleKey, role)
			c.Set(CtxTenantIDKey, tenantID)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
