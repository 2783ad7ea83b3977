package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func shirt() ProductInfo {
	return ProductInfo{ID: "p1", TenantID: "t1", Title: "Shirt", Price: 20}
}

func mug() ProductInfo {
	return ProductInfo{ID: "p2", TenantID: "t1", Title: "Mug", Price: 5}
}

func TestCart_AddItem_SameProductIncrementsQuantity(t *testing.T) {
	c := New()

	for i := 0; i < 5; i++ {
		c.AddItem(shirt())
	}

	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, "p1", snap.Items[0].ProductID)
	assert.Equal(t, int64(5), snap.Items[0].Quantity)
}

func TestCart_AddItem_EmptyCartAdoptsTenant(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.Snapshot().TenantID)

	c.AddItem(shirt())
	assert.Equal(t, "t1", c.Snapshot().TenantID)
}

func TestCart_AddItem_TwiceScenario(t *testing.T) {
	//空カートに同じ商品を2回追加
	c := New()
	c.AddItem(shirt())
	c.AddItem(shirt())

	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, int64(2), snap.Items[0].Quantity)
	assert.Equal(t, int64(20), snap.Items[0].UnitPrice)
	assert.Equal(t, int64(2), c.TotalItems())
	assert.Equal(t, int64(40), c.Subtotal())
}

func TestCart_AddItem_CrossTenantRestartsCart(t *testing.T) {
	c := New()
	c.AddItem(shirt())
	c.AddItem(mug())

	//別テナントの商品を入れると作り直し
	c.AddItem(ProductInfo{ID: "x1", TenantID: "t2", Title: "Cap", Price: 15})

	snap := c.Snapshot()
	assert.Equal(t, "t2", snap.TenantID)
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, "x1", snap.Items[0].ProductID)
	assert.Equal(t, int64(1), snap.TotalItems)
}

func TestCart_Totals(t *testing.T) {
	c := New()
	c.AddItem(shirt())
	c.AddItem(shirt())
	c.AddItem(mug())
	c.UpdateQuantity("p2", 3)

	snap := c.Snapshot()

	var wantItems int64
	var wantSubtotal int64
	for _, it := range snap.Items {
		wantItems += it.Quantity
		wantSubtotal += it.UnitPrice * it.Quantity
	}

	assert.Equal(t, wantItems, snap.TotalItems)
	assert.Equal(t, wantSubtotal, snap.Subtotal)
	assert.Equal(t, int64(5), c.TotalItems())
	assert.Equal(t, int64(55), c.Subtotal())
}

func TestCart_RemoveItem_IsIdempotent(t *testing.T) {
	c := New()
	c.AddItem(shirt())
	c.AddItem(mug())

	c.RemoveItem("p1")
	assert.Equal(t, 1, len(c.Snapshot().Items))

	//2回目は何もしない
	c.RemoveItem("p1")
	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, "p2", snap.Items[0].ProductID)
}

func TestCart_RemoveLastItem_ResetsTenant(t *testing.T) {
	c := New()
	c.AddItem(shirt())

	c.RemoveItem("p1")
	snap := c.Snapshot()
	assert.Equal(t, 0, len(snap.Items))
	assert.Equal(t, "", snap.TenantID)

	//空になった後は別テナントをそのまま受け入れる
	c.AddItem(ProductInfo{ID: "x1", TenantID: "t2", Title: "Cap", Price: 15})
	assert.Equal(t, "t2", c.Snapshot().TenantID)
}

func TestCart_UpdateQuantity_ZeroRemoves(t *testing.T) {
	c := New()
	c.AddItem(shirt())
	c.AddItem(mug())

	c.UpdateQuantity("p1", 0)

	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, "p2", snap.Items[0].ProductID)
}

func TestCart_UpdateQuantity_MissingProductIsNoop(t *testing.T) {
	c := New()
	c.AddItem(shirt())

	c.UpdateQuantity("nope", 7)

	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, int64(1), snap.Items[0].Quantity)
}

func TestCart_OpenClose_Idempotent(t *testing.T) {
	c := New()
	assert.False(t, c.Snapshot().IsOpen)

	c.Open()
	c.Open()
	assert.True(t, c.Snapshot().IsOpen)

	c.Close()
	c.Close()
	assert.False(t, c.Snapshot().IsOpen)
}

// 同一セッションの並行リクエスト（複数タブ）。go test -race で検証する。
func TestCart_ConcurrentAddsFromOneSession(t *testing.T) {
	c := New()

	const goroutines = 8
	const addsEach = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsEach; i++ {
				c.AddItem(shirt())
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, 1, len(snap.Items))
	assert.Equal(t, int64(goroutines*addsEach), snap.Items[0].Quantity)
	assert.Equal(t, int64(goroutines*addsEach), snap.TotalItems)
	assert.Equal(t, int64(goroutines*addsEach*20), snap.Subtotal)
}

// 追加・削除・読み取りが混ざっても壊れない（最終状態は決定的でなくてよい）。
func TestCart_ConcurrentMixedOperations(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				c.AddItem(shirt())
				c.AddItem(mug())
				c.UpdateQuantity("p2", 2)
				c.RemoveItem("p2")
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, "t1", snap.TenantID)
	assert.Equal(t, int64(4*50), snap.Items[0].Quantity)
}

func TestSessionStore_GetCreatesOnce(t *testing.T) {
	s := NewSessionStore()

	c1 := s.Get("sess-1")
	c1.AddItem(shirt())

	//同じセッションは同じカート
	c2 := s.Get("sess-1")
	assert.Same(t, c1, c2)
	assert.Equal(t, int64(1), c2.TotalItems())

	//別セッションは別カート
	c3 := s.Get("sess-2")
	assert.NotSame(t, c1, c3)
	assert.Equal(t, int64(0), c3.TotalItems())
	assert.Equal(t, 2, s.Len())
}

func TestSessionStore_Clear(t *testing.T) {
	s := NewSessionStore()
	s.Get("sess-1").AddItem(shirt())

	s.Clear("sess-1")
	assert.Equal(t, 0, s.Len())

	//Clear後は新しい空カート
	assert.Equal(t, int64(0), s.Get("sess-1").TotalItems())
}
