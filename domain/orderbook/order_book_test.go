package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *OrderBook, id uint64, side Side, otype OrderType, price string, qty int64) (*Order, []Trade) {
	t.Helper()
	var p Price
	if otype != Market {
		var err error
		p, err = PriceFromString(price)
		require.NoError(t, err)
	}
	o, err := NewOrder(id, side, otype, p, qty)
	require.NoError(t, err)
	trades, err := b.Place(o)
	require.NoError(t, err)
	return o, trades
}

func limit(t *testing.T, b *OrderBook, id uint64, side Side, price string, qty int64) (*Order, []Trade) {
	t.Helper()
	return place(t, b, id, side, Limit, price, qty)
}

func TestPlaceRestsWhenNotCrossing(t *testing.T) {
	b := NewOrderBook()

	o, trades := limit(t, b, 1, Bid, "100", 10)
	assert.Empty(t, trades)
	assert.Equal(t, Active, o.Status)
	assert.True(t, b.Has(1))

	best, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, "100", best.String())

	_, ok = b.BestAsk()
	assert.False(t, ok)
}

func TestMatchAtMakerPrice(t *testing.T) {
	b := NewOrderBook()

	limit(t, b, 1, Ask, "100", 10)

	// Bid at 101 crosses the resting ask; the trade prints at the
	// maker's 100, not the taker's 101.
	o, trades := limit(t, b, 2, Bid, "101", 4)
	require.Len(t, trades, 1)
	assert.Equal(t, "100", trades[0].Price.String())
	assert.Equal(t, int64(4), trades[0].Qty)
	assert.Equal(t, uint64(1), trades[0].MakerID)
	assert.Equal(t, uint64(2), trades[0].TakerID)
	assert.Equal(t, Filled, o.Status)

	// Maker is partially filled and still resting.
	assert.True(t, b.Has(1))
	best, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, "100", best.String())
	assert.Equal(t, int64(6), b.Depth(1).Asks[0].Qty)
}

func TestSweepMultipleLevelsAndRestRemainder(t *testing.T) {
	b := NewOrderBook()

	limit(t, b, 1, Ask, "100", 5)
	limit(t, b, 2, Ask, "101", 5)
	limit(t, b, 3, Ask, "102", 5)

	o, trades := limit(t, b, 4, Bid, "101", 12)
	require.Len(t, trades, 2)
	assert.Equal(t, "100", trades[0].Price.String())
	assert.Equal(t, int64(5), trades[0].Qty)
	assert.Equal(t, "101", trades[1].Price.String())
	assert.Equal(t, int64(5), trades[1].Qty)

	// 2 left over rests at 101; the 102 ask is untouched.
	assert.Equal(t, Active, o.Status)
	assert.Equal(t, int64(2), o.Remaining())
	assert.False(t, b.Has(1))
	assert.False(t, b.Has(2))
	assert.True(t, b.Has(3))
	assert.True(t, b.Has(4))

	bid, ok := b.BestBid()
	require.True(t, ok)
	ask, ok2 := b.BestAsk()
	require.True(t, ok2)
	assert.Equal(t, "101", bid.String())
	assert.Equal(t, "102", ask.String())
	assert.True(t, bid.Less(ask), "book must never rest crossed")
}

func TestTimePriorityWithinLevel(t *testing.T) {
	b := NewOrderBook()

	limit(t, b, 1, Ask, "100", 5)
	limit(t, b, 2, Ask, "100", 5)
	limit(t, b, 3, Ask, "100", 5)

	_, trades := limit(t, b, 4, Bid, "100", 8)
	require.Len(t, trades, 2)
	assert.Equal(t, uint64(1), trades[0].MakerID)
	assert.Equal(t, int64(5), trades[0].Qty)
	assert.Equal(t, uint64(2), trades[1].MakerID)
	assert.Equal(t, int64(3), trades[1].Qty)

	// Order 2 keeps its queue position with the remainder.
	assert.False(t, b.Has(1))
	assert.True(t, b.Has(2))
	assert.Equal(t, int64(7), b.Depth(1).Asks[0].Qty)
}

func TestPriceBeatsTime(t *testing.T) {
	b := NewOrderBook()

	limit(t, b, 1, Ask, "101", 5)
	limit(t, b, 2, Ask, "100", 5)

	_, trades := limit(t, b, 3, Bid, "101", 5)
	require.Len(t, trades, 1)
	assert.Equal(t, uint64(2), trades[0].MakerID, "better price matches first despite arriving later")
}

func TestQuantityConservation(t *testing.T) {
	b := NewOrderBook()

	limit(t, b, 1, Ask, "100", 7)
	taker, trades := limit(t, b, 2, Bid, "100", 10)

	var traded int64
	for _, tr := range trades {
		traded += tr.Qty
	}
	assert.Equal(t, int64(7), traded)
	assert.Equal(t, int64(3), taker.Remaining())
	assert.Equal(t, int64(10), traded+taker.Remaining())
}

func TestDuplicateID(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Bid, "100", 10)

	p, err := PriceFromString("99")
	require.NoError(t, err)
	o, err := NewOrder(1, Bid, Limit, p, 5)
	require.NoError(t, err)

	_, err = b.Place(o)
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.False(t, b.Halted())
}

func TestCancel(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Bid, "100", 10)
	limit(t, b, 2, Bid, "100", 5)

	o, err := b.Cancel(1)
	require.NoError(t, err)
	assert.Equal(t, Cancelled, o.Status)
	assert.False(t, b.Has(1))
	assert.True(t, b.Has(2))
	assert.Equal(t, int64(5), b.Depth(1).Bids[0].Qty)

	// Cancelling the last order at a level removes the level.
	_, err = b.Cancel(2)
	require.NoError(t, err)
	assert.Equal(t, 0, b.BidLevels())

	_, err = b.Cancel(1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelUnknownID(t *testing.T) {
	b := NewOrderBook()
	_, err := b.Cancel(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.False(t, b.Halted())
}

func TestMarketOrder(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Ask, "100", 5)
	limit(t, b, 2, Ask, "101", 5)

	// Fills through levels regardless of price, remainder discarded.
	o, trades := place(t, b, 3, Bid, Market, "", 12)
	require.Len(t, trades, 2)
	assert.Equal(t, Cancelled, o.Status)
	assert.Equal(t, int64(2), o.Remaining())
	assert.False(t, b.Has(3))
	assert.Equal(t, 0, b.AskLevels())
}

func TestMarketOrderEmptyBook(t *testing.T) {
	b := NewOrderBook()
	o, trades := place(t, b, 1, Bid, Market, "", 10)
	assert.Empty(t, trades)
	assert.Equal(t, Cancelled, o.Status)
	assert.Equal(t, 0, b.BidLevels())
}

func TestIOC(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Ask, "100", 5)

	o, trades := place(t, b, 2, Bid, IOC, "100", 8)
	require.Len(t, trades, 1)
	assert.Equal(t, int64(5), trades[0].Qty)
	assert.Equal(t, Cancelled, o.Status)
	assert.False(t, b.Has(2), "IOC remainder must not rest")
}

func TestFOK(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Ask, "100", 5)
	limit(t, b, 2, Ask, "101", 5)

	// Not enough quantity within the limit: rejected, book untouched.
	o, trades := place(t, b, 3, Bid, FOK, "100", 8)
	assert.Empty(t, trades)
	assert.Equal(t, Rejected, o.Status)
	assert.Equal(t, int64(5), b.Depth(1).Asks[0].Qty)

	// Enough across two levels: fills completely.
	o, trades = place(t, b, 4, Bid, FOK, "101", 8)
	require.Len(t, trades, 2)
	assert.Equal(t, Filled, o.Status)
	assert.Equal(t, int64(0), o.Remaining())
}

func TestPostOnly(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Ask, "100", 5)

	// Would cross: rejected without trading.
	o, trades := place(t, b, 2, Bid, PostOnly, "100", 5)
	assert.Empty(t, trades)
	assert.Equal(t, Rejected, o.Status)
	assert.False(t, b.Has(2))

	// Passive price: rests like a limit.
	o, trades = place(t, b, 3, Bid, PostOnly, "99", 5)
	assert.Empty(t, trades)
	assert.Equal(t, Active, o.Status)
	assert.True(t, b.Has(3))
}

func TestDepth(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Bid, "99", 10)
	limit(t, b, 2, Bid, "100", 5)
	limit(t, b, 3, Bid, "100", 5)
	limit(t, b, 4, Ask, "101", 7)
	limit(t, b, 5, Ask, "102", 3)

	d := b.Depth(2)
	require.Len(t, d.Bids, 2)
	require.Len(t, d.Asks, 2)

	// Best first on both sides.
	assert.Equal(t, "100", d.Bids[0].Price.String())
	assert.Equal(t, int64(10), d.Bids[0].Qty)
	assert.Equal(t, 2, d.Bids[0].Orders)
	assert.Equal(t, "99", d.Bids[1].Price.String())
	assert.Equal(t, "101", d.Asks[0].Price.String())
	assert.Equal(t, "102", d.Asks[1].Price.String())

	// Truncated view.
	d = b.Depth(1)
	assert.Len(t, d.Bids, 1)
	assert.Len(t, d.Asks, 1)

	// n <= 0 returns everything.
	d = b.Depth(0)
	assert.Len(t, d.Bids, 2)
	assert.Len(t, d.Asks, 2)
}

func TestHaltedBookRefusesMutations(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Bid, "100", 10)
	b.halted = true

	p, err := PriceFromString("100")
	require.NoError(t, err)
	o, err := NewOrder(2, Ask, Limit, p, 5)
	require.NoError(t, err)

	_, err = b.Place(o)
	assert.ErrorIs(t, err, ErrHalted)

	_, err = b.Cancel(1)
	assert.ErrorIs(t, err, ErrHalted)
}

func TestTradeSeqMonotonic(t *testing.T) {
	b := NewOrderBook()
	limit(t, b, 1, Ask, "100", 5)
	limit(t, b, 2, Ask, "100", 5)

	_, trades := limit(t, b, 3, Bid, "100", 10)
	require.Len(t, trades, 2)
	assert.Equal(t, trades[0].Seq+1, trades[1].Seq)
}
