package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"odin/domain/orderbook"
	"odin/infra/memory"
)

// Load restores resting orders into an empty book and returns the
// snapshot sequence. A missing snapshot is not an error; boot then
// replays the WAL from the beginning.
func Load(
	dir string,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}

	for _, e := range s.Orders {
		price, err := orderbook.PriceFromTicks(e.Price)
		if err != nil {
			return 0, fmt.Errorf("snapshot order %d: %w", e.ID, err)
		}

		o := pool.Get()
		if err := o.Reset(e.ID, orderbook.Side(e.Side), orderbook.OrderType(e.Type), price, e.Qty); err != nil {
			pool.Put(o)
			return 0, fmt.Errorf("snapshot order %d: %w", e.ID, err)
		}
		o.Filled = e.Filled
		o.SeqID = e.Seq

		// A snapshot holds only non-crossing resting orders, so Place
		// never trades here.
		if _, err := book.Place(o); err != nil {
			return 0, fmt.Errorf("restore order %d: %w", e.ID, err)
		}
	}

	return s.Seq, nil
}
