package orderbook

import "github.com/google/btree"

// bookSide holds one side's price levels ordered by price. Bids walk
// best-first descending, asks best-first ascending.
type bookSide struct {
	side   Side
	levels *btree.BTreeG[*PriceLevel]
}

func newBookSide(side Side) *bookSide {
	return &bookSide{
		side: side,
		levels: btree.NewG(16, func(a, b *PriceLevel) bool {
			return a.Price.Less(b.Price)
		}),
	}
}

func (s *bookSide) getOrCreate(price Price) *PriceLevel {
	if lvl, ok := s.levels.Get(&PriceLevel{Price: price}); ok {
		return lvl
	}
	lvl := &PriceLevel{Price: price}
	s.levels.ReplaceOrInsert(lvl)
	return lvl
}

func (s *bookSide) find(price Price) *PriceLevel {
	if lvl, ok := s.levels.Get(&PriceLevel{Price: price}); ok {
		return lvl
	}
	return nil
}

func (s *bookSide) remove(price Price) {
	s.levels.Delete(&PriceLevel{Price: price})
}

// best returns the most aggressive level: highest bid, lowest ask.
func (s *bookSide) best() *PriceLevel {
	var (
		lvl *PriceLevel
		ok  bool
	)
	if s.side == Bid {
		lvl, ok = s.levels.Max()
	} else {
		lvl, ok = s.levels.Min()
	}
	if !ok {
		return nil
	}
	return lvl
}

func (s *bookSide) len() int {
	return s.levels.Len()
}

// walk visits levels best-first until fn returns false.
func (s *bookSide) walk(fn func(*PriceLevel) bool) {
	if s.side == Bid {
		s.levels.Descend(fn)
	} else {
		s.levels.Ascend(fn)
	}
}
