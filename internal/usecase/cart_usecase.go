package usecase

import (
	"context"
	"net/http"

	"app/internal/cart"
	repo "app/internal/repository"
)

// CartUsecase はストアフロントのカート操作。
// カート本体はセッションの中（internal/cart）、ここはDBの商品と
// カートをつなぐだけ。ネットワークに出るのは商品の取得のみ。
type CartUsecase struct {
	productRepo repo.ProductRepository
}

func NewCartUsecase(productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{productRepo: productRepo}
}

// カートの返却DTO。合計は毎回計算する。
type CartResponse struct {
	TenantID   string          `json:"tenant_id"`
	Items      []cart.LineItem `json:"items"`
	TotalItems int64           `json:"total_items"`
	Subtotal   int64           `json:"subtotal"`
	IsOpen     bool            `json:"is_open"`
}

func buildCartResponse(c *cart.Cart) CartResponse {
	snap := c.Snapshot()
	return CartResponse{
		TenantID:   snap.TenantID,
		Items:      snap.Items,
		TotalItems: snap.TotalItems,
		Subtotal:   snap.Subtotal,
		IsOpen:     snap.IsOpen,
	}
}

// GetCart は現在のカートを返す。
func (u *CartUsecase) GetCart(c *cart.Cart) CartResponse {
	return buildCartResponse(c)
}

// AddToCart は商品をカートに1つ追加する。
// 商品は必ずこのテナントの公開商品から引く（追加時点の価格を採用）。
func (u *CartUsecase) AddToCart(ctx context.Context, c *cart.Cart, tenantID string, productID string) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, tenantID, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	c.AddItem(cart.ProductInfo{
		ID:       p.ID,
		TenantID: p.TenantID,
		Title:    p.Title,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	})

	return buildCartResponse(c), nil
}

// RemoveFromCart は明細を削除する。無くてもエラーにしない。
func (u *CartUsecase) RemoveFromCart(c *cart.Cart, productID string) CartResponse {
	c.RemoveItem(productID)
	return buildCartResponse(c)
}

// UpdateCartItem は数量を上書きする。qty<=0は削除扱い。
func (u *CartUsecase) UpdateCartItem(c *cart.Cart, productID string, qty int64) CartResponse {
	c.UpdateQuantity(productID, qty)
	return buildCartResponse(c)
}

// ドロワー開閉。
func (u *CartUsecase) OpenCart(c *cart.Cart) CartResponse {
	c.Open()
	return buildCartResponse(c)
}

func (u *CartUsecase) CloseCart(c *cart.Cart) CartResponse {
	c.Close()
	return buildCartResponse(c)
}
