package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CartSessionCookie = "cart_session"
	CtxCartSessionKey = "cart_session_id" // string
)

// CartSession はブラウザセッションのIDをcookieで維持する。
// 初回アクセスでuuidを発行。カート本体はこのIDでSessionStoreから引く。
func CartSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string

			if ck, err := c.Cookie(CartSessionCookie); err == nil && ck.Value != "" {
				sessionID = ck.Value
			} else {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxCartSessionKey, sessionID)
			return next(c)
		}
	}
}

// SessionIDFromContext はリクエストのセッションIDを取り出す。
func SessionIDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(CtxCartSessionKey).(string)
	return id, ok && id != ""
}
