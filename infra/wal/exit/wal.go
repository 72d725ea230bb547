// Package exit implements the durable trade outbox. Every trade the
// book produces is staged here after the mutation that created it
// commits; the broadcaster drains pending records to Kafka with
// at-least-once delivery. States move NEW -> SENT -> ACKED.
package exit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][len:4][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+4+8+4+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint32(buf[13:17], uint32(len(r.Payload)))
	copy(buf[17:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 17 {
		return Record{}, errors.New("exit record too short")
	}
	l := binary.BigEndian.Uint32(b[13:17])
	if len(b) != int(17+l) {
		return Record{}, errors.New("exit record length mismatch")
	}
	payload := make([]byte, l)
	copy(payload, b[17:])
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- WAL --------------------

type ExitWAL struct {
	db *pebble.DB
}

func Open(dir string) (*ExitWAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability over throughput here
	})
	if err != nil {
		return nil, err
	}
	return &ExitWAL{db: db}, nil
}

func (w *ExitWAL) Close() error {
	return w.db.Close()
}

// -------------------- API --------------------

// Put stages a new outbox entry, keyed by trade sequence.
func (w *ExitWAL) Put(seq uint64, payload []byte) error {
	rec := Record{
		Seq:     seq,
		State:   StateNew,
		Payload: payload,
	}
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

func (w *ExitWAL) Get(seq uint64) (Record, error) {
	val, closer, err := w.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	rec, err := decodeRecord(val)
	if err != nil {
		return Record{}, err
	}
	rec.Seq = seq
	return rec, nil
}

func (w *ExitWAL) MarkSent(seq uint64) error {
	return w.transition(seq, StateSent)
}

func (w *ExitWAL) MarkAcked(seq uint64) error {
	return w.transition(seq, StateAcked)
}

func (w *ExitWAL) MarkFailed(seq uint64) error {
	return w.transition(seq, StateFailed)
}

func (w *ExitWAL) transition(seq uint64, state State) error {
	rec, err := w.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	rec.LastAttempt = time.Now().UnixNano()
	if state == StateSent {
		rec.Retries++
	}
	return w.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// -------------------- Scan --------------------

// ScanPending visits every record not yet acked, in sequence order.
func (w *ExitWAL) ScanPending(fn func(*Record) error) error {
	return w.scan(func(rec *Record) error {
		if rec.State == StateAcked {
			return nil
		}
		return fn(rec)
	})
}

// PurgeAcked deletes every acked record. Called by the snapshot job.
func (w *ExitWAL) PurgeAcked() error {
	return w.scan(func(rec *Record) error {
		if rec.State != StateAcked {
			return nil
		}
		return w.db.Delete(keyFor(rec.Seq), pebble.Sync)
	})
}

func (w *ExitWAL) scan(fn func(*Record) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec.Seq = seq

		if err := fn(&rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

const keyPrefix = "trade/"

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte(keyPrefix))), "%d", &seq)
	return seq, err
}
