package orderbook

import (
	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// TreeLevels is a red-black-tree level store for one side, keyed by tick.
// It serves unbounded tick ranges where the dense Ladder cannot be sized
// up front. The banded book uses the Ladder; TreeLevels is the comparison
// structure the data-structure benchmarks measure it against.
type TreeLevels struct {
	tree       *rbt.Tree[int64, *PriceLevel]
	descending bool
}

// NewTreeLevels creates an empty tree-backed side. descending is true for
// bids so that the tree's leftmost key is always the best price.
func NewTreeLevels(descending bool) *TreeLevels {
	var comparator func(a, b int64) int
	if descending {
		comparator = func(a, b int64) int {
			if a > b {
				return -1
			} else if a < b {
				return 1
			}
			return 0
		}
	} else {
		comparator = func(a, b int64) int {
			if a < b {
				return -1
			} else if a > b {
				return 1
			}
			return 0
		}
	}

	return &TreeLevels{
		tree:       rbt.NewWith[int64, *PriceLevel](comparator),
		descending: descending,
	}
}

// Level returns the level at price, creating it when absent.
func (t *TreeLevels) Level(price int64) *PriceLevel {
	if lvl, found := t.tree.Get(price); found {
		return lvl
	}
	lvl := &PriceLevel{}
	t.tree.Put(price, lvl)
	return lvl
}

// Find returns the level at price, or nil when no such level exists.
func (t *TreeLevels) Find(price int64) *PriceLevel {
	lvl, _ := t.tree.Get(price)
	return lvl
}

// RemoveLevel drops the level at price. Callers remove a level once it
// empties: BestPrice reports the tree's leftmost key whether or not that
// level still holds orders.
func (t *TreeLevels) RemoveLevel(price int64) {
	t.tree.Remove(price)
}

// BestPrice returns the best tick for this side, or false when empty.
func (t *TreeLevels) BestPrice() (int64, bool) {
	node := t.tree.Left()
	if node == nil {
		return 0, false
	}
	return node.Key, true
}

// BestLevel returns the level at the best price, or nil when empty.
func (t *TreeLevels) BestLevel() *PriceLevel {
	node := t.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

// Empty reports whether the side holds no levels.
func (t *TreeLevels) Empty() bool { return t.tree.Empty() }

// Size returns the number of price levels.
func (t *TreeLevels) Size() int { return t.tree.Size() }

// Depth returns up to maxLevels levels, best first.
func (t *TreeLevels) Depth(maxLevels int) []DepthLevel {
	if maxLevels <= 0 || t.tree.Empty() {
		return nil
	}

	depth := make([]DepthLevel, 0, maxLevels)
	it := t.tree.Iterator()
	for it.Next() && len(depth) < maxLevels {
		lvl := it.Value()
		if lvl.Empty() {
			continue
		}
		depth = append(depth, DepthLevel{
			Price:    it.Key(),
			Quantity: lvl.TotalQuantity(),
			Orders:   lvl.Count(),
		})
	}
	return depth
}
