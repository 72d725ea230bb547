package orderbook

// PriceLevel is the FIFO queue of resting orders at a single price.
// Insertion order is time priority. TotalQty tracks the sum of
// remaining size across the queue and must stay consistent on every
// enqueue, removal, and partial fill.
type PriceLevel struct {
	Price Price

	head *Order
	tail *Order

	TotalQty   int64
	OrderCount int
}

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Remaining()
	p.OrderCount++
}

func (p *PriceLevel) PopHead() *Order {
	o := p.head
	if o == nil {
		return nil
	}

	p.head = o.next
	if p.head != nil {
		p.head.prev = nil
	} else {
		p.tail = nil
	}

	o.next = nil
	o.prev = nil

	p.TotalQty -= o.Remaining()
	p.OrderCount--

	return o
}

// Remove unlinks the order with the given id. The scan from the head
// is O(n) in the level; order counts per level are small in practice.
func (p *PriceLevel) Remove(id uint64) *Order {
	for o := p.head; o != nil; o = o.next {
		if o.ID != id {
			continue
		}

		if o.prev != nil {
			o.prev.next = o.next
		} else {
			p.head = o.next
		}
		if o.next != nil {
			o.next.prev = o.prev
		} else {
			p.tail = o.prev
		}

		o.next = nil
		o.prev = nil

		p.TotalQty -= o.Remaining()
		p.OrderCount--
		return o
	}
	return nil
}

// reduce records a partial fill against the head order.
func (p *PriceLevel) reduce(qty int64) {
	p.TotalQty -= qty
}

func (p *PriceLevel) Empty() bool {
	return p.head == nil
}

// Read-only helper
func (p *PriceLevel) Head() *Order {
	return p.head
}
