package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"odin/domain/orderbook"
	"odin/infra/memory"
	"odin/infra/sequence"
	entrywal "odin/infra/wal/entry"
	exitwal "odin/infra/wal/exit"
)

// Status of a submitted order as seen by the caller.
type Status uint8

const (
	StatusResting Status = iota
	StatusPartiallyFilled
	StatusFilled
	StatusCancelled
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPartiallyFilled:
		return "partially_filled"
	case StatusFilled:
		return "filled"
	case StatusCancelled:
		return "cancelled"
	case StatusRejected:
		return "rejected"
	default:
		return "resting"
	}
}

// SubmitOrder is the command accepted by Submit. Price is a decimal
// string such as "100.25"; market orders may leave it empty.
type SubmitOrder struct {
	ID    uint64
	Side  orderbook.Side
	Type  orderbook.OrderType
	Price string
	Qty   int64
}

type SubmitResult struct {
	Status    Status
	Seq       uint64
	Remaining int64
	Trades    []orderbook.Trade
}

// OrderView is a read-only copy of a resting order.
type OrderView struct {
	ID        uint64
	Side      orderbook.Side
	Type      orderbook.OrderType
	Price     orderbook.Price
	Qty       int64
	Remaining int64
	Seq       uint64
}

// TradeEvent is the outbox payload published to the trade topic.
type TradeEvent struct {
	V     int    `json:"v"`
	Type  string `json:"type"`
	Seq   uint64 `json:"seq"`
	Price string `json:"price"`
	Qty   int64  `json:"qty"`
	Maker uint64 `json:"maker"`
	Taker uint64 `json:"taker"`
	Time  int64  `json:"time"`
}

// Engine is the ONLY write entry point into the matching core.
type Engine struct {
	mu sync.Mutex

	book *orderbook.OrderBook
	pool *memory.Pool[orderbook.Order]
	seq  *sequence.Sequencer

	entryWAL *entrywal.WAL // nil disables command journaling (tests)
	exitWAL  *exitwal.ExitWAL
	log      *zap.Logger
}

// NewEngine wires all dependencies. No globals.
func NewEngine(
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
	seq *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	exitWAL *exitwal.ExitWAL,
	log *zap.Logger,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		book:     book,
		pool:     pool,
		seq:      seq,
		entryWAL: entryWAL,
		exitWAL:  exitWAL,
		log:      log,
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Submit validates the command, journals it, and runs it through the
// book. Trades are staged to the outbox only after the book mutation
// has completed, so observers never see a trade ahead of book state.
func (e *Engine) Submit(cmd SubmitOrder) (SubmitResult, error) {
	price, err := parsePrice(cmd.Type, cmd.Price)
	if err != nil {
		return SubmitResult{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.submitLocked(cmd.ID, cmd.Side, cmd.Type, price, cmd.Qty)
}

// Cancel removes a resting order.
func (e *Engine) Cancel(id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	o, err := e.cancelLocked(id)
	if err != nil {
		return err
	}
	e.pool.Put(o)
	return nil
}

// Amend replaces a resting order's price and size as cancel plus
// re-submit inside one critical section. Time priority resets; the
// order keeps its id, side, and type.
func (e *Engine) Amend(id uint64, priceStr string, qty int64) (SubmitResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.book.Has(id) {
		return SubmitResult{}, fmt.Errorf("%w: id %d", orderbook.ErrOrderNotFound, id)
	}

	// Validate the replacement fully before touching the book, so a
	// bad amend leaves the original order resting.
	if qty <= 0 {
		return SubmitResult{}, fmt.Errorf("%w: size %d", orderbook.ErrInvalidOrder, qty)
	}
	price, err := orderbook.PriceFromString(priceStr)
	if err != nil {
		return SubmitResult{}, err
	}

	o, err := e.cancelLocked(id)
	if err != nil {
		return SubmitResult{}, err
	}
	side, otype := o.Side, o.Type
	e.pool.Put(o)

	return e.submitLocked(id, side, otype, price, qty)
}

func (e *Engine) submitLocked(
	id uint64,
	side orderbook.Side,
	otype orderbook.OrderType,
	price orderbook.Price,
	qty int64,
) (SubmitResult, error) {
	if e.book.Has(id) {
		return SubmitResult{}, fmt.Errorf("%w: duplicate id %d", orderbook.ErrInvalidOrder, id)
	}

	o := e.pool.Get()
	if err := o.Reset(id, side, otype, price, qty); err != nil {
		e.pool.Put(o)
		return SubmitResult{}, err
	}
	o.SeqID = e.seq.Next()

	if err := e.appendPlace(o); err != nil {
		e.pool.Put(o)
		return SubmitResult{}, fmt.Errorf("wal append: %w", err)
	}

	trades, err := e.book.Place(o)
	if err != nil {
		if errors.Is(err, orderbook.ErrInvariantViolation) {
			e.log.Error("book halted on invariant violation",
				zap.Uint64("order", id), zap.Error(err))
			return SubmitResult{}, err
		}
		e.pool.Put(o)
		return SubmitResult{}, err
	}

	e.stageTrades(trades)

	res := SubmitResult{
		Seq:       o.SeqID,
		Remaining: o.Remaining(),
		Trades:    trades,
	}
	switch o.Status {
	case orderbook.Filled:
		res.Status = StatusFilled
	case orderbook.Rejected:
		res.Status = StatusRejected
	case orderbook.Cancelled:
		// Market/IOC remainder was discarded.
		res.Status = StatusCancelled
		if len(trades) > 0 {
			res.Status = StatusPartiallyFilled
		}
	default:
		res.Status = StatusResting
		if len(trades) > 0 {
			res.Status = StatusPartiallyFilled
		}
	}

	if o.Status != orderbook.Active {
		e.pool.Put(o)
	}

	e.log.Debug("order submitted",
		zap.Uint64("id", id),
		zap.Stringer("side", side),
		zap.Stringer("type", otype),
		zap.Stringer("price", price),
		zap.Int64("qty", qty),
		zap.Stringer("status", res.Status),
		zap.Int("trades", len(trades)))

	return res, nil
}

func (e *Engine) cancelLocked(id uint64) (*orderbook.Order, error) {
	seq := e.seq.Next()
	if err := e.appendCancel(id, seq); err != nil {
		return nil, fmt.Errorf("wal append: %w", err)
	}

	o, err := e.book.Cancel(id)
	if err != nil {
		if errors.Is(err, orderbook.ErrInvariantViolation) {
			e.log.Error("book halted on invariant violation",
				zap.Uint64("order", id), zap.Error(err))
		}
		return nil, err
	}

	e.log.Debug("order cancelled", zap.Uint64("id", id), zap.Uint64("seq", seq))
	return o, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Depth returns up to levels price levels per side, best first.
func (e *Engine) Depth(levels int) orderbook.Depth {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Depth(levels)
}

func (e *Engine) BestBid() (orderbook.Price, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.BestBid()
}

func (e *Engine) BestAsk() (orderbook.Price, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.BestAsk()
}

// ActiveOrders copies every resting order, bids then asks, best level
// first.
func (e *Engine) ActiveOrders() []OrderView {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]OrderView, 0, 1024)
	walk := func(lvl *orderbook.PriceLevel) bool {
		for o := lvl.Head(); o != nil; o = o.Next() {
			out = append(out, OrderView{
				ID:        o.ID,
				Side:      o.Side,
				Type:      o.Type,
				Price:     o.Price,
				Qty:       o.Qty,
				Remaining: o.Remaining(),
				Seq:       o.SeqID,
			})
		}
		return true
	}
	e.book.BidsWalk(walk)
	e.book.AsksWalk(walk)
	return out
}

//
// ──────────────────────────────────────────────────────────
// Journaling & events
// ──────────────────────────────────────────────────────────
//

// WAL payload format: id|side|type|priceTicks|qty
func (e *Engine) appendPlace(o *orderbook.Order) error {
	if e.entryWAL == nil {
		return nil
	}
	payload := fmt.Sprintf("%d|%d|%d|%d|%d",
		o.ID, o.Side, o.Type, o.Price.Ticks(), o.Qty)
	return e.entryWAL.Append(entrywal.NewRecord(entrywal.RecordPlace, o.SeqID, []byte(payload)))
}

func (e *Engine) appendCancel(id, seq uint64) error {
	if e.entryWAL == nil {
		return nil
	}
	payload := strconv.FormatUint(id, 10)
	return e.entryWAL.Append(entrywal.NewRecord(entrywal.RecordCancel, seq, []byte(payload)))
}

// stageTrades writes trade events to the outbox. Staging is
// best-effort: a failed write loses the event, not the trade, and is
// logged loudly.
func (e *Engine) stageTrades(trades []orderbook.Trade) {
	if e.exitWAL == nil {
		return
	}
	for _, t := range trades {
		payload, err := json.Marshal(TradeEvent{
			V:     1,
			Type:  "trade",
			Seq:   t.Seq,
			Price: t.Price.String(),
			Qty:   t.Qty,
			Maker: t.MakerID,
			Taker: t.TakerID,
			Time:  t.Time,
		})
		if err != nil {
			e.log.Error("trade event marshal failed", zap.Uint64("seq", t.Seq), zap.Error(err))
			continue
		}
		if err := e.exitWAL.Put(t.Seq, payload); err != nil {
			e.log.Error("trade event stage failed", zap.Uint64("seq", t.Seq), zap.Error(err))
		}
	}
}

func parsePrice(otype orderbook.OrderType, s string) (orderbook.Price, error) {
	if otype == orderbook.Market {
		return orderbook.Price{}, nil
	}
	return orderbook.PriceFromString(s)
}
