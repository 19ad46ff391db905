package domain

// TradeRing is a TradeSink that keeps the most recent trades in a fixed
// power-of-two ring on top of StatsSink aggregation. The engine is
// single-threaded, so the ring needs no synchronization; older entries are
// overwritten once the ring wraps.
type TradeRing struct {
	StatsSink

	buf  []Trade
	mask int64
	next int64
}

var _ TradeSink = (*TradeRing)(nil)

// NewTradeRing creates a ring retaining the last size trades.
func NewTradeRing(size int) *TradeRing {
	if size <= 0 || size&(size-1) != 0 {
		panic("TradeRing size must be a power of 2")
	}
	return &TradeRing{
		buf:  make([]Trade, size),
		mask: int64(size - 1),
	}
}

// OnTrade implements TradeSink.
func (r *TradeRing) OnTrade(qty, price int64, takerID, makerID OrderID) {
	r.StatsSink.OnTrade(qty, price, takerID, makerID)
	r.buf[r.next&r.mask] = Trade{Qty: qty, Price: price, TakerID: takerID, MakerID: makerID}
	r.next++
}

// Len returns the number of trades currently retained.
func (r *TradeRing) Len() int {
	if r.next < int64(len(r.buf)) {
		return int(r.next)
	}
	return len(r.buf)
}

// Recent returns up to n retained trades, most recent last.
func (r *TradeRing) Recent(n int) []Trade {
	held := r.Len()
	if n > held {
		n = held
	}
	out := make([]Trade, 0, n)
	for seq := r.next - int64(n); seq < r.next; seq++ {
		out = append(out, r.buf[seq&r.mask])
	}
	return out
}
