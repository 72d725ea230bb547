package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"odin/domain/orderbook"
	"odin/infra/memory"
	"odin/infra/sequence"
	entrywal "odin/infra/wal/entry"
)

// ReplayFromWAL rebuilds book state from the entry WAL. It MUST run
// before the engine accepts traffic. Records at or below afterSeq are
// skipped; a snapshot already covers them. The exit WAL is never
// replayed, so trades produced here are not re-staged.
func ReplayFromWAL(
	dir string,
	afterSeq uint64,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
	log *zap.Logger,
) error {
	if log == nil {
		log = zap.NewNop()
	}

	lastSeq, err := entrywal.Replay(dir, func(rec *entrywal.Record) error {
		if rec.Seq <= afterSeq {
			return nil
		}

		switch rec.Type {
		case entrywal.RecordPlace:
			return replayPlace(rec, book, pool)
		case entrywal.RecordCancel:
			return replayCancel(rec, book, pool)
		default:
			return fmt.Errorf("unknown WAL record type %d at seq %d", rec.Type, rec.Seq)
		}
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay.
	if lastSeq < afterSeq {
		lastSeq = afterSeq
	}
	seqGen.Reset(lastSeq)

	log.Info("wal replay complete", zap.Uint64("last_seq", lastSeq))
	return nil
}

func replayPlace(
	rec *entrywal.Record,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
) error {
	// Payload format: id|side|type|priceTicks|qty
	parts := strings.Split(string(rec.Data), "|")
	if len(parts) != 5 {
		return fmt.Errorf("invalid WAL payload at seq %d: %q", rec.Seq, rec.Data)
	}

	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return err
	}
	side, err := strconv.Atoi(parts[1])
	if err != nil {
		return err
	}
	otype, err := strconv.Atoi(parts[2])
	if err != nil {
		return err
	}
	ticks, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return err
	}
	qty, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return err
	}

	price, err := orderbook.PriceFromTicks(ticks)
	if err != nil {
		return fmt.Errorf("seq %d: %w", rec.Seq, err)
	}

	o := pool.Get()
	if err := o.Reset(id, orderbook.Side(side), orderbook.OrderType(otype), price, qty); err != nil {
		pool.Put(o)
		return fmt.Errorf("seq %d: %w", rec.Seq, err)
	}
	o.SeqID = rec.Seq

	if _, err := book.Place(o); err != nil {
		// The place was journaled before the book validated it, so a
		// rejected duplicate replays as a no-op.
		if errors.Is(err, orderbook.ErrInvalidOrder) {
			pool.Put(o)
			return nil
		}
		return fmt.Errorf("seq %d: %w", rec.Seq, err)
	}
	if o.Status != orderbook.Active {
		pool.Put(o)
	}
	return nil
}

func replayCancel(
	rec *entrywal.Record,
	book *orderbook.OrderBook,
	pool *memory.Pool[orderbook.Order],
) error {
	id, err := strconv.ParseUint(string(rec.Data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid WAL payload at seq %d: %q", rec.Seq, rec.Data)
	}

	o, err := book.Cancel(id)
	if err != nil {
		// Cancels are journaled before lookup; a miss replays as a
		// no-op.
		if errors.Is(err, orderbook.ErrOrderNotFound) {
			return nil
		}
		return fmt.Errorf("seq %d: %w", rec.Seq, err)
	}
	pool.Put(o)
	return nil
}
