package orderbook

// Band is the inclusive range of legal ticks for a book.
type Band struct {
	MinTick int64
	MaxTick int64
}

// DefaultBand is the 201-level band the benchmark exercises.
var DefaultBand = Band{MinTick: 900, MaxTick: 1100}

// NumLevels returns the number of ticks in the band.
func (b Band) NumLevels() int { return int(b.MaxTick-b.MinTick) + 1 }

// Contains reports whether price lies inside the band.
func (b Band) Contains(price int64) bool {
	return price >= b.MinTick && price <= b.MaxTick
}

// Mid returns the middle tick of the band.
func (b Band) Mid() int64 { return (b.MinTick + b.MaxTick) / 2 }

// DepthLevel is one row of a market-depth snapshot.
type DepthLevel struct {
	Price    int64
	Quantity int64
	Orders   int
}

// Ladder is one side's price structure: a dense array of levels indexed by
// tick - MinTick, plus a lazily-maintained best cursor. descending is true
// for bids (best = highest index) and false for asks (best = lowest index).
// The cursor may lag conservatively after a level empties; callers
// re-tighten it with AdvanceBest before the next crossing decision.
type Ladder struct {
	band       Band
	levels     []PriceLevel
	bestIdx    int
	descending bool
}

// NewLadder creates an empty ladder for one side of the band.
func NewLadder(band Band, descending bool) *Ladder {
	l := &Ladder{
		band:       band,
		levels:     make([]PriceLevel, band.NumLevels()),
		descending: descending,
	}
	if descending {
		l.bestIdx = -1
	} else {
		l.bestIdx = len(l.levels)
	}
	return l
}

// Band returns the ladder's tick band.
func (l *Ladder) Band() Band { return l.band }

// Index maps a tick inside the band to its level index. The caller gates
// out-of-band prices.
func (l *Ladder) Index(price int64) int { return int(price - l.band.MinTick) }

// Price maps a level index back to its tick.
func (l *Ladder) Price(idx int) int64 { return int64(idx) + l.band.MinTick }

// Level returns the level for a tick inside the band.
func (l *Ladder) Level(price int64) *PriceLevel {
	return &l.levels[l.Index(price)]
}

// LevelAt returns the level at a valid index.
func (l *Ladder) LevelAt(idx int) *PriceLevel { return &l.levels[idx] }

// BestIdx returns the current best cursor, -1 (bids) or NumLevels (asks)
// when the side is empty.
func (l *Ladder) BestIdx() int { return l.bestIdx }

// HasBest reports whether the cursor points at a level, i.e. the side is
// non-empty once the cursor is tight.
func (l *Ladder) HasBest() bool {
	if l.descending {
		return l.bestIdx >= 0
	}
	return l.bestIdx < len(l.levels)
}

// BestPrice returns the best tick for this side, or false when empty.
func (l *Ladder) BestPrice() (int64, bool) {
	if !l.HasBest() {
		return 0, false
	}
	return l.Price(l.bestIdx), true
}

// AdvanceBest walks the cursor away from the extreme toward the interior
// until it lands on a non-empty level or passes out of band.
func (l *Ladder) AdvanceBest() {
	if l.descending {
		for l.bestIdx >= 0 && l.levels[l.bestIdx].Empty() {
			l.bestIdx--
		}
		return
	}
	for l.bestIdx < len(l.levels) && l.levels[l.bestIdx].Empty() {
		l.bestIdx++
	}
}

// TightenBest moves the cursor to idx when idx strictly improves it.
func (l *Ladder) TightenBest(idx int) {
	if l.descending {
		if idx > l.bestIdx {
			l.bestIdx = idx
		}
		return
	}
	if idx < l.bestIdx {
		l.bestIdx = idx
	}
}

// Depth walks from the best cursor toward the interior and returns up to
// maxLevels non-empty levels, best first.
func (l *Ladder) Depth(maxLevels int) []DepthLevel {
	if maxLevels <= 0 || !l.HasBest() {
		return nil
	}

	depth := make([]DepthLevel, 0, maxLevels)
	step := 1
	if l.descending {
		step = -1
	}
	for idx := l.bestIdx; idx >= 0 && idx < len(l.levels) && len(depth) < maxLevels; idx += step {
		lvl := &l.levels[idx]
		if lvl.Empty() {
			continue
		}
		depth = append(depth, DepthLevel{
			Price:    l.Price(idx),
			Quantity: lvl.TotalQuantity(),
			Orders:   lvl.Count(),
		})
	}
	return depth
}
