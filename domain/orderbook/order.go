package orderbook

import "fmt"

// Side of the book an order belongs to.
type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ask"
	}
	return "bid"
}

// Opposite returns the side an order matches against.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// OrderType selects matching and resting semantics.
type OrderType uint8

const (
	// Limit matches what it can and rests the remainder.
	Limit OrderType = iota
	// Market ignores price and never rests.
	Market
	// IOC matches what it can and discards the remainder.
	IOC
	// FOK fills completely or not at all.
	FOK
	// PostOnly rests only; it is rejected if it would cross.
	PostOnly
)

func (t OrderType) String() string {
	switch t {
	case Market:
		return "market"
	case IOC:
		return "ioc"
	case FOK:
		return "fok"
	case PostOnly:
		return "post-only"
	default:
		return "limit"
	}
}

// Status of an order inside the book.
type Status uint8

const (
	Active Status = iota
	Filled
	Cancelled
	Rejected
)

func (s Status) String() string {
	switch s {
	case Filled:
		return "filled"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	default:
		return "active"
	}
}

// Order is a single buy or sell intent. While resting it is owned by
// exactly one PriceLevel; next/prev link it into that level's FIFO.
// Price is fixed at creation; amendments are cancel plus re-submit.
type Order struct {
	ID     uint64
	Side   Side
	Type   OrderType
	Price  Price
	Qty    int64 // original size
	Filled int64
	SeqID  uint64
	Status Status

	next *Order
	prev *Order
}

// NewOrder validates and builds an order. Size must be positive.
func NewOrder(id uint64, side Side, otype OrderType, price Price, qty int64) (*Order, error) {
	o := &Order{}
	if err := o.Reset(id, side, otype, price, qty); err != nil {
		return nil, err
	}
	return o, nil
}

// Reset reinitializes a (possibly pooled) order in place.
func (o *Order) Reset(id uint64, side Side, otype OrderType, price Price, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidOrder, qty)
	}
	*o = Order{
		ID:     id,
		Side:   side,
		Type:   otype,
		Price:  price,
		Qty:    qty,
		Status: Active,
	}
	return nil
}

func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// applyFill reduces remaining size. A fill beyond remaining is an
// engine bug, not a user error.
func (o *Order) applyFill(qty int64) error {
	if qty <= 0 || qty > o.Remaining() {
		return fmt.Errorf("%w: fill %d vs remaining %d on order %d",
			ErrInvariantViolation, qty, o.Remaining(), o.ID)
	}
	o.Filled += qty
	return nil
}

// Read-only traversal helper
func (o *Order) Next() *Order {
	return o.next
}
