package handler

import (
	"net/http"

	"app/internal/cart"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /store/:slug/cart のHTTP。
// カート本体はセッションの中、DBには書かない。
type CartHandler struct {
	uc       *usecase.CartUsecase
	sessions *cart.SessionStore
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, sessions *cart.SessionStore) *CartHandler {
	return &CartHandler{uc: uc, sessions: sessions}
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /store/:slug/cart 配下を登録
func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart/items", h.addItem)
	g.PATCH("/cart/items/:productID", h.updateItem)
	g.DELETE("/cart/items/:productID", h.removeItem)
	g.POST("/cart/open", h.openCart)
	g.POST("/cart/close", h.closeCart)
	g.DELETE("/cart", h.clearCart)
}

// セッションのカートとslugのテナントをまとめて引く。
func (h *CartHandler) sessionCart(c echo.Context) (*cart.Cart, string, error) {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		return nil, "", usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	r, ok := middleware.ResolverFromContext(c)
	if !ok {
		return nil, "", usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	tenant, err := r.GetTenant(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return nil, "", usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if tenant == nil {
		return nil, "", usecase.NewHTTPError(http.StatusNotFound, "store not found")
	}

	return h.sessions.Get(sessionID), tenant.ID, nil
}

func (h *CartHandler) getCart(c echo.Context) error {
	sc, _, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.uc.GetCart(sc))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sc, tenantID, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), sc, tenantID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// セッションのカートを破棄する（ログアウトや購入完了後の明示クリア）。
func (h *CartHandler) clearCart(c echo.Context) error {
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		return writeError(c, usecase.NewHTTPError(http.StatusInternalServerError, "internal error"))
	}

	h.sessions.Clear(sessionID)
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	sc, _, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, h.uc.UpdateCartItem(sc, c.Param("productID"), req.Quantity))
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sc, _, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.uc.RemoveFromCart(sc, c.Param("productID")))
}

func (h *CartHandler) openCart(c echo.Context) error {
	sc, _, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.uc.OpenCart(sc))
}

func (h *CartHandler) closeCart(c echo.Context) error {
	sc, _, err := h.sessionCart(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.uc.CloseCart(sc))
}
