package workload

import (
	"math/rand"
	"time"

	"ladder-exchange/domain"
	"ladder-exchange/matching"
)

// Sink is the slice of the trade-sink surface the driver polls: trade
// callbacks, aggregate stats, and the closed-id list it prunes its live
// set from. domain.StatsSink and everything embedding it satisfy this.
type Sink interface {
	domain.TradeSink
	Stats() (trades, filledQty int64)
	ClosedOrderIDs() []domain.OrderID
	ClearClosedOrderIDs()
}

// Result summarises one workload run. For a fixed config the trade count,
// filled quantity, and live counts are bitwise reproducible.
type Result struct {
	Ops      int64
	Adds     int64
	Cancels  int64
	Replaces int64

	Trades    int64
	FilledQty int64

	EngineLive   int
	TrackerLive  int
	PoolCapacity int

	Elapsed time.Duration
}

// OpsPerSec returns the run's throughput.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// Runner drives one engine through a seeded operation stream. Everything is
// synchronous: one goroutine, one engine, one sink.
type Runner struct {
	cfg    Config
	eng    *matching.Engine
	sink   Sink
	rng    *rand.Rand
	live   *LiveSet
	nextID domain.OrderID
}

// expectedOrdersCap bounds the pool pre-reservation for very large runs;
// the pool grows by slab past it.
const expectedOrdersCap = 1 << 18

// NewRunner validates the config and builds an engine sized for the run.
func NewRunner(cfg Config, sink Sink) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	expected := cfg.Ops
	if expected > expectedOrdersCap {
		expected = expectedOrdersCap
	}

	eng := matching.NewEngine(matching.Config{
		Band:           cfg.Band,
		ExpectedOrders: int(expected),
		MaxOrderID:     cfg.MaxOrderID(),
	}, sink)

	return &Runner{
		cfg:    cfg,
		eng:    eng,
		sink:   sink,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		live:   NewLiveSet(cfg.MaxOrderID()),
		nextID: 1,
	}, nil
}

// Engine exposes the engine for post-run inspection (depth, best prices).
func (r *Runner) Engine() *matching.Engine { return r.eng }

// Run executes the configured number of operations and returns the stats.
func (r *Runner) Run() Result {
	var res Result
	start := time.Now()

	for i := int64(0); i < r.cfg.Ops; i++ {
		roll := r.rng.Intn(100) + 1

		switch {
		case roll <= r.cfg.AddPct:
			r.add(&res)
		case roll <= r.cfg.AddPct+r.cfg.CancelPct:
			r.cancel(&res)
		default:
			r.replace(&res)
		}

		r.prune()
	}

	res.Elapsed = time.Since(start)
	res.Ops = r.cfg.Ops
	res.Trades, res.FilledQty = r.sink.Stats()
	res.EngineLive = r.eng.LiveOrders()
	res.TrackerLive = r.live.Len()
	res.PoolCapacity = r.eng.PoolCapacity()
	return res
}

func (r *Runner) add(res *Result) {
	side := domain.SideBuy
	if r.rng.Intn(2) == 1 {
		side = domain.SideSell
	}
	price := r.price(side)
	qty := r.rng.Int63n(r.cfg.MaxQty) + 1

	id := r.nextID
	r.nextID++

	if r.eng.Submit(domain.Order{ID: id, Side: side, Price: price, Qty: qty}).Rested() {
		r.live.Add(id)
	}
	res.Adds++
}

func (r *Runner) cancel(res *Result) {
	if r.live.Empty() {
		return
	}
	id := r.live.Pick(r.rng)
	r.eng.Cancel(id)
	r.live.Remove(id)
	res.Cancels++
}

func (r *Runner) replace(res *Result) {
	if r.live.Empty() {
		return
	}
	id := r.live.Pick(r.rng)
	resting, ok := r.eng.RestingOrder(id)
	if !ok {
		// Stale tracker entry; drop it and move on.
		r.live.Remove(id)
		return
	}

	// Replace preserves side, so the new price is drawn for the resting
	// order's side.
	price := r.price(resting.Side)
	qty := r.rng.Int63n(r.cfg.MaxQty) + 1

	rr := r.eng.Replace(id, price, qty)
	if !rr.Rested() {
		r.live.Remove(id)
	} else if !r.live.Contains(id) {
		r.live.Add(id)
	}
	res.Replaces++
}

// price draws a tick from the window [mid-spread, mid+spread] according to
// the mode's pricing policy.
func (r *Runner) price(side domain.Side) int64 {
	mid := r.cfg.Band.Mid()
	spread := r.cfg.PriceSpread

	aggressive := false
	if r.cfg.Mode == ModeMatch {
		aggressive = r.rng.Intn(100) < r.cfg.CrossPct
	}

	if side == domain.SideBuy {
		if aggressive {
			return mid + r.rng.Int63n(spread+1)
		}
		return mid - spread + r.rng.Int63n(spread)
	}
	if aggressive {
		return mid - r.rng.Int63n(spread+1)
	}
	return mid + 1 + r.rng.Int63n(spread)
}

// prune drops makers the engine closed during the last operation from the
// live set, mirroring how a client consumes the sink's closed-id list.
func (r *Runner) prune() {
	for _, id := range r.sink.ClosedOrderIDs() {
		r.live.Remove(id)
	}
	r.sink.ClearClosedOrderIDs()
}
