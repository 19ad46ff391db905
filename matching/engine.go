package matching

import (
	"ladder-exchange/domain"
	"ladder-exchange/orderbook"
)

// Config sizes a new engine. Neither bound is a hard cap: the pool grows by
// slab when ExpectedOrders is exceeded, and the index grows when an id
// passes MaxOrderID.
type Config struct {
	Band           orderbook.Band
	ExpectedOrders int
	MaxOrderID     int64
}

// DefaultConfig sizes an engine for the standard benchmark band.
func DefaultConfig() Config {
	return Config{
		Band:           orderbook.DefaultBand,
		ExpectedOrders: 1 << 16,
		MaxOrderID:     1 << 20,
	}
}

// Engine is a single-symbol, price-time-priority limit-order matching
// engine. All operations run to completion on the calling goroutine; there
// is no internal concurrency and no locking. The engine owns the ladders,
// the node pool, and the id index; the sink is an external collaborator
// that must not re-enter the engine from a callback.
type Engine struct {
	band  orderbook.Band
	bids  *orderbook.Ladder
	asks  *orderbook.Ladder
	pool  *orderbook.NodePool
	index *orderbook.IDIndex
	sink  domain.TradeSink
}

// NewEngine creates an empty engine publishing trades to sink.
func NewEngine(cfg Config, sink domain.TradeSink) *Engine {
	return &Engine{
		band:  cfg.Band,
		bids:  orderbook.NewLadder(cfg.Band, true),
		asks:  orderbook.NewLadder(cfg.Band, false),
		pool:  orderbook.NewNodePool(cfg.ExpectedOrders),
		index: orderbook.NewIDIndex(cfg.MaxOrderID),
		sink:  sink,
	}
}

// Submit crosses an incoming order against the opposite side and rests any
// remainder. Invalid input (negative id, qty <= 0, price out of band,
// duplicate resting id) returns AddRejected with no side effects.
func (e *Engine) Submit(o domain.Order) domain.AddResult {
	if o.ID < 0 || o.Qty <= 0 || !e.band.Contains(o.Price) || e.index.Contains(o.ID) {
		return domain.AddRejected
	}

	in := o
	var filled bool
	if in.Side == domain.SideBuy {
		filled = e.crossBuy(&in)
	} else {
		filled = e.crossSell(&in)
	}

	if in.Qty == 0 {
		return domain.AddFullyMatched
	}

	e.rest(in)
	if filled {
		return domain.AddPartiallyRested
	}
	return domain.AddFullyRested
}

// Cancel detaches a resting order in O(1) and returns its node to the
// pool. Returns false when the id is not currently resting.
func (e *Engine) Cancel(id domain.OrderID) bool {
	ref, ok := e.index.Lookup(id)
	if !ok {
		return false
	}

	ladder := e.ladder(ref.Side)
	idx := ladder.Index(ref.Price)
	level := ladder.LevelAt(idx)

	level.Erase(ref.Node)
	e.index.Remove(id)
	e.pool.Free(ref.Node)

	if level.Empty() && idx == ladder.BestIdx() {
		ladder.AdvanceBest()
	}
	return true
}

// Replace cancels the resting order and resubmits it on the same side at
// the new price and quantity; the resubmit may cross immediately. The old
// order leaves the book before crossing begins, so it can never self-trade,
// and no trades are emitted between the cancel and the submit. When the id
// is not resting, nothing happens and Success is false.
func (e *Engine) Replace(id domain.OrderID, newPrice, newQty int64) domain.ReplaceResult {
	ref, ok := e.index.Lookup(id)
	if !ok {
		return domain.ReplaceResult{}
	}

	side := ref.Side
	e.Cancel(id)

	add := e.Submit(domain.Order{ID: id, Side: side, Price: newPrice, Qty: newQty})
	return domain.ReplaceResult{Success: true, Add: add}
}

// LiveOrders returns the count of currently-resting ids.
func (e *Engine) LiveOrders() int { return e.index.Size() }

// RestingOrder returns the current state of a resting order (side, price,
// remaining qty), or false when the id is not resting.
func (e *Engine) RestingOrder(id domain.OrderID) (domain.Order, bool) {
	ref, ok := e.index.Lookup(id)
	if !ok {
		return domain.Order{}, false
	}
	return ref.Node.Order, true
}

// Band returns the engine's tick band.
func (e *Engine) Band() orderbook.Band { return e.band }

// BestBid returns the highest resting bid tick, or false when no bids rest.
func (e *Engine) BestBid() (int64, bool) { return e.bids.BestPrice() }

// BestAsk returns the lowest resting ask tick, or false when no asks rest.
func (e *Engine) BestAsk() (int64, bool) { return e.asks.BestPrice() }

// Depth returns up to maxLevels non-empty levels for one side, best first.
func (e *Engine) Depth(side domain.Side, maxLevels int) []orderbook.DepthLevel {
	return e.ladder(side).Depth(maxLevels)
}

// PoolCapacity returns the node pool's slab-backed capacity.
func (e *Engine) PoolCapacity() int { return e.pool.Capacity() }

func (e *Engine) ladder(side domain.Side) *orderbook.Ladder {
	if side == domain.SideBuy {
		return e.bids
	}
	return e.asks
}

// crossBuy consumes ask levels from the best cursor upward while the
// incoming buy is marketable. Returns true when at least one fill occurred.
func (e *Engine) crossBuy(in *domain.Order) bool {
	filled := false
	limitIdx := e.asks.Index(in.Price)

	for in.Qty > 0 && e.asks.HasBest() {
		if e.asks.BestIdx() > limitIdx {
			break
		}

		level := e.asks.LevelAt(e.asks.BestIdx())
		price := e.asks.Price(e.asks.BestIdx())

		if e.consumeLevel(in, level, price) {
			filled = true
		}

		if level.Empty() {
			e.asks.AdvanceBest()
		} else {
			break
		}
	}
	return filled
}

// crossSell consumes bid levels from the best cursor downward while the
// incoming sell is marketable.
func (e *Engine) crossSell(in *domain.Order) bool {
	filled := false
	limitIdx := e.bids.Index(in.Price)

	for in.Qty > 0 && e.bids.HasBest() {
		if e.bids.BestIdx() < limitIdx {
			break
		}

		level := e.bids.LevelAt(e.bids.BestIdx())
		price := e.bids.Price(e.bids.BestIdx())

		if e.consumeLevel(in, level, price) {
			filled = true
		}

		if level.Empty() {
			e.bids.AdvanceBest()
		} else {
			break
		}
	}
	return filled
}

// consumeLevel fills the incoming order against the level's makers in FIFO
// order. A maker is removed, deindexed, reported closed, and freed the
// moment its quantity reaches zero, before the next fill begins.
func (e *Engine) consumeLevel(in *domain.Order, level *orderbook.PriceLevel, price int64) bool {
	filled := false

	for in.Qty > 0 {
		maker := level.Front()
		if maker == nil {
			break
		}

		fill := min(in.Qty, maker.Order.Qty)
		maker.Order.Qty -= fill
		in.Qty -= fill
		level.Reduce(fill)

		e.sink.OnTrade(fill, price, in.ID, maker.Order.ID)
		filled = true

		if maker.Order.Qty == 0 {
			makerID := maker.Order.ID
			e.index.Remove(makerID)
			level.PopFront()
			e.pool.Free(maker)
			e.sink.OrderClosed(makerID)
		} else {
			// Maker still has quantity, so the incoming order is done.
			break
		}
	}
	return filled
}

// rest inserts the remainder at the tail of its own-side level, records it
// in the index, and tightens the side's best cursor.
func (e *Engine) rest(o domain.Order) {
	node := e.pool.Alloc(o)
	ladder := e.ladder(o.Side)
	idx := ladder.Index(o.Price)

	ladder.LevelAt(idx).PushBack(node)
	e.index.Insert(o.ID, orderbook.OrderRef{Node: node, Price: o.Price, Side: o.Side})
	ladder.TightenBest(idx)
}
