package cart

import "sync"

// カートに入れる商品情報（追加時点のスナップショット）。
type ProductInfo struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

// カートの明細。商品1つにつき1行。
type LineItem struct {
	ProductID string `json:"product_id"`
	TenantID  string `json:"tenant_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	ImageURL  string `json:"image_url"`
	Quantity  int64  `json:"quantity"`
}

// 1セッション分のカート状態。
// 空のカートはtenantID=""。明細は必ず同一テナント。
// 同じセッションのリクエストは並行に来る（タブが複数）ため、
// 全操作をロックで直列化する。読み取りはSnapshotで。
type Cart struct {
	mu       sync.Mutex
	tenantID string
	items    []LineItem
	isOpen   bool
}

func New() *Cart {
	return &Cart{items: []LineItem{}}
}

// AddItem は商品を1つ追加する。
// 同一商品は数量加算、空カートへの最初の追加でテナントが決まる。
// 別テナントの商品を入れた場合はカートを作り直して新テナントで始める
// （買い物客が別のストアに移った扱い）。
func (c *Cart) AddItem(p ProductInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tenantID != "" && p.TenantID != c.tenantID {
		c.items = c.items[:0]
		c.tenantID = ""
	}

	if c.tenantID == "" {
		c.tenantID = p.TenantID
	}

	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		TenantID:  p.TenantID,
		Title:     p.Title,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
}

// RemoveItem は明細を削除する。無ければ何もしない。
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeItem(productID)
}

// UpdateQuantity は明細の数量を上書きする。
// qty<=0 はRemoveItemと同じ。対象が無ければ何もしない。
func (c *Cart) UpdateQuantity(productID string, qty int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// ロック保持前提。
func (c *Cart) removeItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}

	if len(c.items) == 0 {
		c.tenantID = ""
	}
}

// ドロワー開閉（冪等）。
func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = false
}

// TotalItems は数量の合計。毎回計算する（保存しない）。
func (c *Cart) TotalItems() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems()
}

// Subtotal は 単価×数量 の合計。
func (c *Cart) Subtotal() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotal()
}

func (c *Cart) totalItems() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) subtotal() int64 {
	var total int64
	for _, it := range c.items {
		total += it.UnitPrice * it.Quantity
	}
	return total
}

// Snapshot はカートの一貫した読み取りコピー。
// 明細と合計が同じ瞬間の値になることを保証する（表示・レスポンス用）。
type Snapshot struct {
	TenantID   string
	Items      []LineItem
	TotalItems int64
	Subtotal   int64
	IsOpen     bool
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	return Snapshot{
		TenantID:   c.tenantID,
		Items:      items,
		TotalItems: c.totalItems(),
		Subtotal:   c.subtotal(),
		IsOpen:     c.isOpen,
	}
}
