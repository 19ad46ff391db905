package orderbook

import "ladder-exchange/domain"

// OrderNode is the resting record for one order: the current remaining
// quantity plus intrusive FIFO links inside its price level. A node's
// address is stable from Alloc to Free.
type OrderNode struct {
	Order domain.Order

	prev *OrderNode
	next *OrderNode
}

// Next returns the node behind this one in its level's FIFO, or nil.
func (n *OrderNode) Next() *OrderNode { return n.next }

// Prev returns the node ahead of this one in its level's FIFO, or nil.
func (n *OrderNode) Prev() *OrderNode { return n.prev }

// growChunk is the slab size for on-demand pool growth.
const growChunk = 1 << 16

// NodePool is a slab-backed freelist allocator for order nodes. Slabs are
// never moved or released until the pool itself is dropped, so handles stay
// valid for the life of the node. Alloc pops the most-recently-freed node
// first for cache locality.
type NodePool struct {
	slabs [][]OrderNode
	free  []*OrderNode
}

// NewNodePool creates a pool pre-reserving the given number of nodes.
func NewNodePool(reserve int) *NodePool {
	p := &NodePool{}
	if reserve > 0 {
		p.Reserve(reserve)
	}
	return p
}

// Reserve appends a slab of n nodes and pushes them all onto the freelist.
func (p *NodePool) Reserve(n int) {
	slab := make([]OrderNode, n)
	p.slabs = append(p.slabs, slab)
	if cap(p.free)-len(p.free) < n {
		grown := make([]*OrderNode, len(p.free), len(p.free)+n)
		copy(grown, p.free)
		p.free = grown
	}
	for i := range slab {
		p.free = append(p.free, &slab[i])
	}
}

// Alloc returns a node initialised with the given order and nil links,
// growing the pool by one slab when the freelist is exhausted.
func (p *NodePool) Alloc(o domain.Order) *OrderNode {
	if len(p.free) == 0 {
		p.Reserve(growChunk)
	}
	n := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	n.Order = o
	n.prev = nil
	n.next = nil
	return n
}

// Free returns a node to the freelist. The caller must have detached it
// from its level first.
func (p *NodePool) Free(n *OrderNode) {
	n.prev = nil
	n.next = nil
	p.free = append(p.free, n)
}

// FreeCount returns the number of nodes currently on the freelist.
func (p *NodePool) FreeCount() int { return len(p.free) }

// Capacity returns the total number of nodes backed by slabs.
func (p *NodePool) Capacity() int {
	total := 0
	for _, slab := range p.slabs {
		total += len(slab)
	}
	return total
}
