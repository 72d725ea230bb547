package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, id uint64, side Side, price string, qty int64) *Order {
	t.Helper()
	p, err := PriceFromString(price)
	require.NoError(t, err)
	o, err := NewOrder(id, side, Limit, p, qty)
	require.NoError(t, err)
	return o
}

func TestPriceLevelFIFO(t *testing.T) {
	lvl := &PriceLevel{}

	lvl.Enqueue(mustOrder(t, 1, Bid, "10", 5))
	lvl.Enqueue(mustOrder(t, 2, Bid, "10", 7))
	lvl.Enqueue(mustOrder(t, 3, Bid, "10", 3))

	assert.Equal(t, int64(15), lvl.TotalQty)
	assert.Equal(t, 3, lvl.OrderCount)

	for _, want := range []uint64{1, 2, 3} {
		o := lvl.PopHead()
		require.NotNil(t, o)
		assert.Equal(t, want, o.ID)
	}
	assert.True(t, lvl.Empty())
	assert.Equal(t, int64(0), lvl.TotalQty)
	assert.Equal(t, 0, lvl.OrderCount)
	assert.Nil(t, lvl.PopHead())
}

func TestPriceLevelRemove(t *testing.T) {
	lvl := &PriceLevel{}
	lvl.Enqueue(mustOrder(t, 1, Bid, "10", 5))
	lvl.Enqueue(mustOrder(t, 2, Bid, "10", 7))
	lvl.Enqueue(mustOrder(t, 3, Bid, "10", 3))

	// Middle removal keeps the chain intact.
	o := lvl.Remove(2)
	require.NotNil(t, o)
	assert.Equal(t, uint64(2), o.ID)
	assert.Equal(t, int64(8), lvl.TotalQty)
	assert.Equal(t, 2, lvl.OrderCount)

	assert.Nil(t, lvl.Remove(42))

	// Head and tail removal.
	require.NotNil(t, lvl.Remove(1))
	require.NotNil(t, lvl.Remove(3))
	assert.True(t, lvl.Empty())
	assert.Equal(t, int64(0), lvl.TotalQty)
}

func TestPriceLevelTotalQtyUsesRemaining(t *testing.T) {
	o := mustOrder(t, 1, Bid, "10", 10)
	require.NoError(t, o.applyFill(4))

	lvl := &PriceLevel{}
	lvl.Enqueue(o)
	assert.Equal(t, int64(6), lvl.TotalQty)

	lvl.reduce(2)
	assert.Equal(t, int64(4), lvl.TotalQty)
}
