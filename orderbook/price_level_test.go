package orderbook

import (
	"testing"

	"ladder-exchange/domain"
)

func levelIDs(l *PriceLevel) []domain.OrderID {
	var ids []domain.OrderID
	for n := l.Front(); n != nil; n = n.Next() {
		ids = append(ids, n.Order.ID)
	}
	return ids
}

// TestLevelPushBackFIFO verifies insertion order is preserved head to tail.
func TestLevelPushBackFIFO(t *testing.T) {
	pool := NewNodePool(4)
	level := &PriceLevel{}

	level.PushBack(pool.Alloc(domain.Order{ID: 1, Qty: 3}))
	level.PushBack(pool.Alloc(domain.Order{ID: 2, Qty: 4}))
	level.PushBack(pool.Alloc(domain.Order{ID: 3, Qty: 5}))

	ids := levelIDs(level)
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("expected FIFO order [1 2 3], got %v", ids)
	}
	if level.TotalQuantity() != 12 {
		t.Errorf("expected total 12, got %d", level.TotalQuantity())
	}
	if level.Count() != 3 {
		t.Errorf("expected count 3, got %d", level.Count())
	}
}

// TestLevelPopFront verifies head detachment and accounting.
func TestLevelPopFront(t *testing.T) {
	pool := NewNodePool(4)
	level := &PriceLevel{}

	level.PushBack(pool.Alloc(domain.Order{ID: 1, Qty: 3}))
	level.PushBack(pool.Alloc(domain.Order{ID: 2, Qty: 4}))

	n := level.PopFront()
	if n == nil || n.Order.ID != 1 {
		t.Fatalf("expected head id 1, got %+v", n)
	}
	if n.Next() != nil || n.Prev() != nil {
		t.Error("popped node must be fully detached")
	}
	if level.TotalQuantity() != 4 || level.Count() != 1 {
		t.Errorf("expected total 4 count 1, got %d/%d", level.TotalQuantity(), level.Count())
	}

	level.PopFront()
	if !level.Empty() {
		t.Error("expected empty level")
	}
	if level.TotalQuantity() != 0 {
		t.Errorf("expected total 0 on empty level, got %d", level.TotalQuantity())
	}
	if level.PopFront() != nil {
		t.Error("pop on empty level must return nil")
	}
}

// TestLevelEraseMiddle verifies O(1) detach of an arbitrary node keeps the
// list consistent.
func TestLevelEraseMiddle(t *testing.T) {
	pool := NewNodePool(4)
	level := &PriceLevel{}

	a := pool.Alloc(domain.Order{ID: 1, Qty: 3})
	b := pool.Alloc(domain.Order{ID: 2, Qty: 4})
	c := pool.Alloc(domain.Order{ID: 3, Qty: 5})
	level.PushBack(a)
	level.PushBack(b)
	level.PushBack(c)

	level.Erase(b)

	ids := levelIDs(level)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("expected [1 3] after erase, got %v", ids)
	}
	if level.TotalQuantity() != 8 {
		t.Errorf("expected total 8, got %d", level.TotalQuantity())
	}
	if a.Next() != c || c.Prev() != a {
		t.Error("links not re-stitched after erase")
	}
}

// TestLevelEraseEnds verifies erasing head and tail updates both pointers.
func TestLevelEraseEnds(t *testing.T) {
	pool := NewNodePool(4)
	level := &PriceLevel{}

	a := pool.Alloc(domain.Order{ID: 1, Qty: 1})
	b := pool.Alloc(domain.Order{ID: 2, Qty: 1})
	c := pool.Alloc(domain.Order{ID: 3, Qty: 1})
	level.PushBack(a)
	level.PushBack(b)
	level.PushBack(c)

	level.Erase(a)
	if level.Front() != b {
		t.Error("expected new head after erasing head")
	}

	level.Erase(c)
	if ids := levelIDs(level); len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected [2], got %v", ids)
	}

	level.Erase(b)
	if !level.Empty() || level.TotalQuantity() != 0 || level.Count() != 0 {
		t.Error("expected empty level after erasing all nodes")
	}
}

// TestLevelReduce verifies per-fill decrement without recomputation.
func TestLevelReduce(t *testing.T) {
	pool := NewNodePool(2)
	level := &PriceLevel{}

	n := pool.Alloc(domain.Order{ID: 1, Qty: 10})
	level.PushBack(n)

	n.Order.Qty -= 4
	level.Reduce(4)

	if level.TotalQuantity() != 6 {
		t.Errorf("expected total 6 after fill, got %d", level.TotalQuantity())
	}
}
