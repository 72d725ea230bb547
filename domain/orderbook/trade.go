package orderbook

// Trade is one match between a resting maker and an incoming taker.
// Price is always the maker's price, never the taker's.
type Trade struct {
	Price   Price
	Qty     int64
	MakerID uint64
	TakerID uint64
	Seq     uint64
	Time    int64
}
