package orderbook

import (
	"fmt"
	"time"
)

// levelRef locates a resting order by side and price. It deliberately
// holds no pointer into the level: cancellation re-resolves through
// the side map, so level removal never leaves a dangling reference.
type levelRef struct {
	side  Side
	price Price
}

// OrderBook matches incoming orders against resting liquidity with
// strict price-time priority. It is single-writer and deterministic;
// the owning engine serializes all access.
type OrderBook struct {
	bids *bookSide
	asks *bookSide

	// index maps every resting order id to its level. An id is in the
	// index iff the order is in exactly one level on that side.
	index map[uint64]levelRef

	lastSeq  uint64
	tradeSeq uint64
	halted   bool
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:  newBookSide(Bid),
		asks:  newBookSide(Ask),
		index: make(map[uint64]levelRef),
	}
}

// Halted reports whether an invariant violation stopped the book.
// A halted book refuses every further mutation.
func (b *OrderBook) Halted() bool {
	return b.halted
}

// LastSeq is the sequence of the last command applied.
func (b *OrderBook) LastSeq() uint64 {
	return b.lastSeq
}

// Has reports whether an order with the given id is resting.
func (b *OrderBook) Has(id uint64) bool {
	_, ok := b.index[id]
	return ok
}

// Place runs the matching loop for an incoming order, then rests or
// discards the remainder according to the order type. Trades are
// returned oldest first; the order's Status tells the outcome.
func (b *OrderBook) Place(o *Order) ([]Trade, error) {
	if b.halted {
		return nil, ErrHalted
	}
	if _, ok := b.index[o.ID]; ok {
		return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidOrder, o.ID)
	}
	b.lastSeq = o.SeqID

	// Market orders never carry a price.
	if o.Type == Market {
		o.Price = Price{}
	}

	if o.Type == PostOnly && b.wouldCross(o) {
		o.Status = Rejected
		return nil, nil
	}

	// FOK is a dry run first: all or nothing.
	if o.Type == FOK && b.availableQty(o) < o.Remaining() {
		o.Status = Rejected
		return nil, nil
	}

	trades, err := b.match(o)
	if err != nil {
		b.halted = true
		return trades, err
	}

	switch {
	case o.Remaining() == 0:
		o.Status = Filled
	case o.Type == Limit || o.Type == PostOnly:
		b.rest(o)
	default:
		// Market and IOC remainders are discarded.
		o.Status = Cancelled
	}
	return trades, nil
}

// match sweeps the opposite side while the incoming order still
// crosses, oldest order first at each level. Trade price is the
// resting (maker) order's price.
func (b *OrderBook) match(o *Order) ([]Trade, error) {
	opp := b.asks
	if o.Side == Ask {
		opp = b.bids
	}

	var trades []Trade
	for o.Remaining() > 0 {
		best := opp.best()
		if best == nil || !crossesLevel(o, best.Price) {
			break
		}

		maker := best.Head()
		qty := min(o.Remaining(), maker.Remaining())

		if err := maker.applyFill(qty); err != nil {
			return trades, err
		}
		if err := o.applyFill(qty); err != nil {
			return trades, err
		}
		best.reduce(qty)

		b.tradeSeq++
		trades = append(trades, Trade{
			Price:   best.Price,
			Qty:     qty,
			MakerID: maker.ID,
			TakerID: o.ID,
			Seq:     b.tradeSeq,
			Time:    time.Now().UnixNano(),
		})

		if maker.Remaining() == 0 {
			maker.Status = Filled
			best.PopHead()
			delete(b.index, maker.ID)
		}
		if best.Empty() {
			opp.remove(best.Price)
		}
	}
	return trades, nil
}

func (b *OrderBook) rest(o *Order) {
	side := b.bids
	if o.Side == Ask {
		side = b.asks
	}
	side.getOrCreate(o.Price).Enqueue(o)
	b.index[o.ID] = levelRef{side: o.Side, price: o.Price}
}

// Cancel removes a resting order. The id index gives the level in
// O(1); removal scans that level's FIFO.
func (b *OrderBook) Cancel(id uint64) (*Order, error) {
	if b.halted {
		return nil, ErrHalted
	}

	ref, ok := b.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}

	side := b.bids
	if ref.side == Ask {
		side = b.asks
	}

	lvl := side.find(ref.price)
	if lvl == nil {
		b.halted = true
		return nil, fmt.Errorf("%w: index points at missing %s level %s",
			ErrInvariantViolation, ref.side, ref.price)
	}

	o := lvl.Remove(id)
	if o == nil {
		b.halted = true
		return nil, fmt.Errorf("%w: order %d missing from %s level %s",
			ErrInvariantViolation, id, ref.side, ref.price)
	}

	delete(b.index, id)
	if lvl.Empty() {
		side.remove(ref.price)
	}

	o.Status = Cancelled
	return o, nil
}

// wouldCross reports whether the order is marketable against the
// opposite best level.
func (b *OrderBook) wouldCross(o *Order) bool {
	opp := b.asks
	if o.Side == Ask {
		opp = b.bids
	}
	best := opp.best()
	return best != nil && crossesLevel(o, best.Price)
}

// crossesLevel is the core crossing condition: bid price >= ask level,
// ask price <= bid level. Market orders cross any level.
func crossesLevel(o *Order, level Price) bool {
	if o.Type == Market {
		return true
	}
	if o.Side == Bid {
		return level.Compare(o.Price) <= 0
	}
	return level.Compare(o.Price) >= 0
}

// availableQty sums opposite-side quantity at crossing levels, early
// out once the order could be fully filled.
func (b *OrderBook) availableQty(o *Order) int64 {
	opp := b.asks
	if o.Side == Ask {
		opp = b.bids
	}

	var avail int64
	opp.walk(func(lvl *PriceLevel) bool {
		if !crossesLevel(o, lvl.Price) {
			return false
		}
		avail += lvl.TotalQty
		return avail < o.Remaining()
	})
	return avail
}

// ---- top of book ----

func (b *OrderBook) BestBid() (Price, bool) {
	if lvl := b.bids.best(); lvl != nil {
		return lvl.Price, true
	}
	return Price{}, false
}

func (b *OrderBook) BestAsk() (Price, bool) {
	if lvl := b.asks.best(); lvl != nil {
		return lvl.Price, true
	}
	return Price{}, false
}

func (b *OrderBook) BidLevels() int { return b.bids.len() }

func (b *OrderBook) AskLevels() int { return b.asks.len() }

// ---- depth ----

// DepthLevel is one aggregated price level in a depth view.
type DepthLevel struct {
	Price  Price
	Qty    int64
	Orders int
}

// Depth is a best-first view of both sides.
type Depth struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// Depth returns up to n levels per side, best price first.
// n <= 0 returns all levels.
func (b *OrderBook) Depth(n int) Depth {
	return Depth{
		Bids: depthSide(b.bids, n),
		Asks: depthSide(b.asks, n),
	}
}

func depthSide(s *bookSide, n int) []DepthLevel {
	out := make([]DepthLevel, 0, s.len())
	s.walk(func(lvl *PriceLevel) bool {
		out = append(out, DepthLevel{
			Price:  lvl.Price,
			Qty:    lvl.TotalQty,
			Orders: lvl.OrderCount,
		})
		return n <= 0 || len(out) < n
	})
	return out
}

// ---- traversal helpers ----

func (b *OrderBook) BidsWalk(fn func(*PriceLevel) bool) {
	b.bids.walk(fn)
}

func (b *OrderBook) AsksWalk(fn func(*PriceLevel) bool) {
	b.asks.walk(fn)
}
