package orderbook

import (
	"testing"

	"ladder-exchange/domain"
)

// TestIndexInsertLookupRemove verifies the basic contract.
func TestIndexInsertLookupRemove(t *testing.T) {
	pool := NewNodePool(4)
	ix := NewIDIndex(128)

	n := pool.Alloc(domain.Order{ID: 42, Side: domain.SideSell, Price: 1005, Qty: 3})
	if !ix.Insert(42, OrderRef{Node: n, Price: 1005, Side: domain.SideSell}) {
		t.Fatal("insert must succeed for fresh id")
	}
	if ix.Size() != 1 {
		t.Errorf("expected size 1, got %d", ix.Size())
	}

	ref, ok := ix.Lookup(42)
	if !ok || ref.Node != n || ref.Price != 1005 || ref.Side != domain.SideSell {
		t.Errorf("lookup returned wrong ref: %+v ok=%v", ref, ok)
	}

	if !ix.Remove(42) {
		t.Error("remove must succeed for present id")
	}
	if ix.Size() != 0 || ix.Contains(42) {
		t.Error("id must be gone after remove")
	}
	if _, ok := ix.Lookup(42); ok {
		t.Error("lookup must miss after remove")
	}
}

// TestIndexRejectsDuplicates verifies insert fails on a present id.
func TestIndexRejectsDuplicates(t *testing.T) {
	pool := NewNodePool(4)
	ix := NewIDIndex(128)

	a := pool.Alloc(domain.Order{ID: 7, Qty: 1})
	b := pool.Alloc(domain.Order{ID: 7, Qty: 2})

	ix.Insert(7, OrderRef{Node: a, Price: 1000, Side: domain.SideBuy})
	if ix.Insert(7, OrderRef{Node: b, Price: 1001, Side: domain.SideBuy}) {
		t.Error("duplicate insert must fail")
	}

	ref, _ := ix.Lookup(7)
	if ref.Node != a {
		t.Error("failed insert must not overwrite existing ref")
	}
}

// TestIndexMissingAndInvalid verifies misses and bad ids are handled.
func TestIndexMissingAndInvalid(t *testing.T) {
	ix := NewIDIndex(16)

	if ix.Remove(5) {
		t.Error("remove of absent id must fail")
	}
	if ix.Contains(-1) {
		t.Error("negative id must not be contained")
	}
	if _, ok := ix.Lookup(999); ok {
		t.Error("lookup past the table must miss")
	}
	if ix.Insert(-3, OrderRef{Node: &OrderNode{}}) {
		t.Error("negative id insert must fail")
	}
}

// TestIndexGrowsPastHint verifies the sizing hint is not a cap.
func TestIndexGrowsPastHint(t *testing.T) {
	pool := NewNodePool(4)
	ix := NewIDIndex(4)

	n := pool.Alloc(domain.Order{ID: 5000, Qty: 1})
	if !ix.Insert(5000, OrderRef{Node: n, Price: 950, Side: domain.SideBuy}) {
		t.Fatal("insert past the hint must grow and succeed")
	}

	ref, ok := ix.Lookup(5000)
	if !ok || ref.Node != n {
		t.Error("lookup after growth must find the ref")
	}
}
