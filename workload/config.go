package workload

import (
	"fmt"

	"ladder-exchange/orderbook"
)

// Mode selects the pricing policy of the generated order stream.
type Mode int

const (
	// ModeMaintenance prices bids strictly below the band's mid and asks
	// strictly above it: the book churns but nothing ever crosses.
	ModeMaintenance Mode = iota

	// ModeMatch prices orders into the opposite half of the price window
	// with probability CrossPct, passively otherwise.
	ModeMatch
)

func (m Mode) String() string {
	if m == ModeMaintenance {
		return "maintenance"
	}
	return "match"
}

// ParseMode maps a CLI mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "maintenance":
		return ModeMaintenance, nil
	case "match":
		return ModeMatch, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want maintenance or match)", s)
	}
}

// Config describes one deterministic workload run.
type Config struct {
	Mode Mode
	Ops  int64
	Seed int64

	// CrossPct is the chance (0..100) that a ModeMatch add is priced
	// aggressively into the opposite half of the window.
	CrossPct int

	// Operation mix, in percent. Must sum to 100.
	AddPct     int
	CancelPct  int
	ReplacePct int

	Band orderbook.Band

	// MaxQty bounds generated order quantities at [1, MaxQty].
	MaxQty int64

	// PriceSpread is the half-width of the price window around the band's
	// mid tick.
	PriceSpread int64
}

// Default returns the standard benchmark workload: 5M ops, seed 12345,
// a 60/25/15 add/cancel/replace mix, and the default 201-tick band.
func Default() Config {
	return Config{
		Mode:        ModeMatch,
		Ops:         5_000_000,
		Seed:        12345,
		CrossPct:    50,
		AddPct:      60,
		CancelPct:   25,
		ReplacePct:  15,
		Band:        orderbook.DefaultBand,
		MaxQty:      10,
		PriceSpread: 50,
	}
}

// Validate rejects malformed workloads before any engine state exists.
func (c Config) Validate() error {
	if c.Ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", c.Ops)
	}
	for _, pct := range []struct {
		name  string
		value int
	}{
		{"add", c.AddPct},
		{"cancel", c.CancelPct},
		{"replace", c.ReplacePct},
		{"cross", c.CrossPct},
	} {
		if pct.value < 0 || pct.value > 100 {
			return fmt.Errorf("%s percentage must be in [0,100], got %d", pct.name, pct.value)
		}
	}
	if sum := c.AddPct + c.CancelPct + c.ReplacePct; sum != 100 {
		return fmt.Errorf("add/cancel/replace percentages must sum to 100, got %d", sum)
	}
	if c.Band.MinTick > c.Band.MaxTick {
		return fmt.Errorf("band min tick %d exceeds max tick %d", c.Band.MinTick, c.Band.MaxTick)
	}
	if c.MaxQty <= 0 {
		return fmt.Errorf("max qty must be positive, got %d", c.MaxQty)
	}
	mid := c.Band.Mid()
	if c.PriceSpread < 1 || mid-c.PriceSpread < c.Band.MinTick || mid+c.PriceSpread > c.Band.MaxTick {
		return fmt.Errorf("price spread %d does not fit the band around mid %d", c.PriceSpread, mid)
	}
	return nil
}

// MaxOrderID returns an upper bound on the ids the run can assign (ids
// run from 1 to at most Ops), used to size the engine's index and the
// live-set tracker.
func (c Config) MaxOrderID() int64 {
	return c.Ops + 10
}
