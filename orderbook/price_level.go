package orderbook

// PriceLevel is an intrusive doubly-linked FIFO of resting nodes at a
// single tick, with a cached aggregate quantity and order count.
// Invariant: totalQty equals the sum of remaining quantities of all nodes
// reachable from head, and the level is empty iff head == tail == nil iff
// totalQty == 0.
type PriceLevel struct {
	head     *OrderNode
	tail     *OrderNode
	totalQty int64
	count    int
}

// Empty reports whether the level holds no resting nodes.
func (l *PriceLevel) Empty() bool { return l.head == nil }

// TotalQuantity returns the cached aggregate remaining quantity.
func (l *PriceLevel) TotalQuantity() int64 { return l.totalQty }

// Count returns the number of resting orders at this level.
func (l *PriceLevel) Count() int { return l.count }

// Front returns the head node (earliest arrival), or nil.
func (l *PriceLevel) Front() *OrderNode { return l.head }

// PushBack appends a node at the tail and adds its quantity to the total.
func (l *PriceLevel) PushBack(n *OrderNode) {
	n.prev = l.tail
	n.next = nil

	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n

	l.totalQty += n.Order.Qty
	l.count++
}

// PopFront detaches and returns the head node. The caller owns returning
// it to the pool. Returns nil on an empty level.
func (l *PriceLevel) PopFront() *OrderNode {
	n := l.head
	if n == nil {
		return nil
	}

	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.prev = nil
	n.next = nil

	l.totalQty -= n.Order.Qty
	l.count--
	return n
}

// Erase detaches an arbitrary node and subtracts its remaining quantity.
func (l *PriceLevel) Erase(n *OrderNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil

	l.totalQty -= n.Order.Qty
	l.count--
}

// Reduce subtracts a fill from the cached total. The caller decrements the
// maker node's quantity by the same amount.
func (l *PriceLevel) Reduce(qty int64) {
	l.totalQty -= qty
}
