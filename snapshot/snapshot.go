package snapshot

import (
	"time"

	"odin/domain/orderbook"
)

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

type OrderEntry struct {
	ID     uint64
	Side   uint8
	Type   uint8
	Price  int64 // ticks
	Qty    int64
	Filled int64
	Seq    uint64
}

// Capture collects every resting order, bids then asks, best level
// first. The caller must hold the book exclusively.
func Capture(seq uint64, book *orderbook.OrderBook) *Snapshot {
	s := &Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	walk := func(lvl *orderbook.PriceLevel) bool {
		for o := lvl.Head(); o != nil; o = o.Next() {
			s.Orders = append(s.Orders, OrderEntry{
				ID:     o.ID,
				Side:   uint8(o.Side),
				Type:   uint8(o.Type),
				Price:  o.Price.Ticks(),
				Qty:    o.Qty,
				Filled: o.Filled,
				Seq:    o.SeqID,
			})
		}
		return true
	}

	book.BidsWalk(walk)
	book.AsksWalk(walk)
	return s
}
