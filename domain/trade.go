package domain

// Trade is one fill between the incoming taker and a resting maker.
// Price is always the maker's price.
type Trade struct {
	Qty     int64
	Price   int64
	TakerID OrderID
	MakerID OrderID
}

// TradeSink receives fills and maker-close notifications from the engine.
// Callbacks are synchronous on the engine's calling goroutine; sinks must
// record or aggregate only and must not re-enter the engine.
type TradeSink interface {
	// OnTrade is invoked once per fill, in crossing order.
	OnTrade(qty, price int64, takerID, makerID OrderID)

	// OrderClosed is invoked when a resting maker is fully consumed and
	// leaves the book.
	OrderClosed(id OrderID)
}

// StatsSink aggregates trade count, filled quantity, and the list of
// newly-closed resting ids since the last poll.
type StatsSink struct {
	TradeCount int64
	TotalQty   int64

	closed []OrderID
}

var _ TradeSink = (*StatsSink)(nil)

// OnTrade implements TradeSink.
func (s *StatsSink) OnTrade(qty, price int64, takerID, makerID OrderID) {
	s.TradeCount++
	s.TotalQty += qty
}

// OrderClosed implements TradeSink.
func (s *StatsSink) OrderClosed(id OrderID) {
	s.closed = append(s.closed, id)
}

// Stats returns the aggregate trade count and filled quantity.
func (s *StatsSink) Stats() (trades, filledQty int64) {
	return s.TradeCount, s.TotalQty
}

// ClosedOrderIDs returns the maker ids fully consumed since the last
// ClearClosedOrderIDs. Clients use it to prune their own live-order mirror.
func (s *StatsSink) ClosedOrderIDs() []OrderID {
	return s.closed
}

// ClearClosedOrderIDs resets the closed-id list, retaining capacity.
func (s *StatsSink) ClearClosedOrderIDs() {
	s.closed = s.closed[:0]
}

// RecordingSink captures every trade in full on top of the aggregate stats.
// Intended for tests and small demos, not for multi-million-op runs.
type RecordingSink struct {
	StatsSink
	Trades []Trade
}

var _ TradeSink = (*RecordingSink)(nil)

// OnTrade implements TradeSink.
func (s *RecordingSink) OnTrade(qty, price int64, takerID, makerID OrderID) {
	s.StatsSink.OnTrade(qty, price, takerID, makerID)
	s.Trades = append(s.Trades, Trade{Qty: qty, Price: price, TakerID: takerID, MakerID: makerID})
}
