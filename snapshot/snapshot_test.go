package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odin/domain/orderbook"
	"odin/infra/memory"
)

func newPool() *memory.Pool[orderbook.Order] {
	return memory.NewPool(func() *orderbook.Order { return new(orderbook.Order) })
}

func placeLimit(t *testing.T, book *orderbook.OrderBook, id uint64, side orderbook.Side, price string, qty int64, seq uint64) {
	t.Helper()
	p, err := orderbook.PriceFromString(price)
	require.NoError(t, err)
	o, err := orderbook.NewOrder(id, side, orderbook.Limit, p, qty)
	require.NoError(t, err)
	o.SeqID = seq
	_, err = book.Place(o)
	require.NoError(t, err)
}

func TestCaptureWriteLoadRoundTrip(t *testing.T) {
	book := orderbook.NewOrderBook()
	placeLimit(t, book, 1, orderbook.Bid, "100", 10, 1)
	placeLimit(t, book, 2, orderbook.Bid, "99.5", 5, 2)
	placeLimit(t, book, 3, orderbook.Ask, "101", 7, 3)

	// A partial fill must survive the round trip.
	placeLimit(t, book, 4, orderbook.Ask, "100", 4, 4)
	assert.False(t, book.Has(4), "order 4 should have fully matched")

	snap := Capture(4, book)
	assert.Equal(t, uint64(4), snap.Seq)
	require.Len(t, snap.Orders, 3)

	dir := t.TempDir()
	w := &Writer{Dir: dir}
	require.NoError(t, w.Write(snap))

	restored := orderbook.NewOrderBook()
	seq, err := Load(dir, restored, newPool())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), seq)

	assert.True(t, restored.Has(1))
	assert.True(t, restored.Has(2))
	assert.True(t, restored.Has(3))

	// Order 1 was filled down to 6 before the snapshot.
	d := restored.Depth(0)
	require.Len(t, d.Bids, 2)
	assert.Equal(t, "100", d.Bids[0].Price.String())
	assert.Equal(t, int64(6), d.Bids[0].Qty)
	require.Len(t, d.Asks, 1)
	assert.Equal(t, "101", d.Asks[0].Price.String())
	assert.Equal(t, int64(7), d.Asks[0].Qty)
}

func TestLoadMissingSnapshot(t *testing.T) {
	book := orderbook.NewOrderBook()
	seq, err := Load(t.TempDir(), book, newPool())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq)
	assert.Equal(t, 0, book.BidLevels())
}

func TestWriteReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	book := orderbook.NewOrderBook()
	placeLimit(t, book, 1, orderbook.Bid, "100", 10, 1)
	require.NoError(t, w.Write(Capture(1, book)))

	placeLimit(t, book, 2, orderbook.Bid, "101", 5, 2)
	require.NoError(t, w.Write(Capture(2, book)))

	restored := orderbook.NewOrderBook()
	seq, err := Load(dir, restored, newPool())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)
	assert.True(t, restored.Has(1))
	assert.True(t, restored.Has(2))
}
