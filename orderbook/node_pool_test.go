package orderbook

import (
	"testing"

	"ladder-exchange/domain"
)

// TestPoolAllocInitialisesNode verifies a fresh node carries the order and
// nil links.
func TestPoolAllocInitialisesNode(t *testing.T) {
	pool := NewNodePool(4)

	n := pool.Alloc(domain.Order{ID: 7, Side: domain.SideBuy, Price: 1000, Qty: 5})
	if n == nil {
		t.Fatal("expected node from pool")
	}
	if n.Order.ID != 7 || n.Order.Price != 1000 || n.Order.Qty != 5 {
		t.Errorf("node order not initialised: %+v", n.Order)
	}
	if n.Next() != nil || n.Prev() != nil {
		t.Error("expected nil links on fresh node")
	}
}

// TestPoolLIFOReuse verifies the most-recently-freed node is handed out
// first.
func TestPoolLIFOReuse(t *testing.T) {
	pool := NewNodePool(4)

	a := pool.Alloc(domain.Order{ID: 1, Qty: 1})
	b := pool.Alloc(domain.Order{ID: 2, Qty: 1})

	pool.Free(a)
	pool.Free(b)

	if got := pool.Alloc(domain.Order{ID: 3, Qty: 1}); got != b {
		t.Error("expected most-recently-freed node first")
	}
	if got := pool.Alloc(domain.Order{ID: 4, Qty: 1}); got != a {
		t.Error("expected earlier-freed node second")
	}
}

// TestPoolGrowsWhenExhausted verifies allocation never fails once the
// reserve runs out.
func TestPoolGrowsWhenExhausted(t *testing.T) {
	pool := NewNodePool(2)
	if pool.Capacity() != 2 {
		t.Fatalf("expected capacity 2, got %d", pool.Capacity())
	}

	nodes := make([]*OrderNode, 0, 3)
	for i := 0; i < 3; i++ {
		nodes = append(nodes, pool.Alloc(domain.Order{ID: domain.OrderID(i), Qty: 1}))
	}

	if pool.Capacity() < 3 {
		t.Errorf("expected pool to grow past reserve, capacity %d", pool.Capacity())
	}
	for i, n := range nodes {
		if n == nil {
			t.Fatalf("allocation %d returned nil", i)
		}
	}
}

// TestPoolAddressStability verifies handles stay valid across growth.
func TestPoolAddressStability(t *testing.T) {
	pool := NewNodePool(1)

	first := pool.Alloc(domain.Order{ID: 100, Qty: 9})
	for i := 0; i < growChunk+10; i++ {
		pool.Alloc(domain.Order{ID: domain.OrderID(i), Qty: 1})
	}

	if first.Order.ID != 100 || first.Order.Qty != 9 {
		t.Errorf("node mutated by pool growth: %+v", first.Order)
	}
}

// TestPoolFreeCount verifies freelist accounting.
func TestPoolFreeCount(t *testing.T) {
	pool := NewNodePool(8)
	if pool.FreeCount() != 8 {
		t.Fatalf("expected 8 free nodes, got %d", pool.FreeCount())
	}

	n := pool.Alloc(domain.Order{ID: 1, Qty: 1})
	if pool.FreeCount() != 7 {
		t.Errorf("expected 7 free nodes after alloc, got %d", pool.FreeCount())
	}

	pool.Free(n)
	if pool.FreeCount() != 8 {
		t.Errorf("expected 8 free nodes after free, got %d", pool.FreeCount())
	}
}
