package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"odin/snapshot"
)

// StartSnapshotJob periodically persists the resting book, then
// truncates the entry WAL below the snapshot and garbage-collects
// acked outbox records. The capture itself runs under the engine
// lock; disk writes do not.
func (e *Engine) StartSnapshotJob(ctx context.Context, dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				e.snapshotOnce(w)
			}
		}
	}()
}

func (e *Engine) snapshotOnce(w *snapshot.Writer) {
	e.mu.Lock()
	seq := e.seq.Current()
	snap := snapshot.Capture(seq, e.book)
	e.mu.Unlock()

	if err := w.Write(snap); err != nil {
		e.log.Warn("snapshot write failed", zap.Error(err))
		return
	}

	if e.entryWAL != nil {
		if err := e.entryWAL.TruncateBefore(seq); err != nil {
			e.log.Warn("wal truncate failed", zap.Error(err))
		}
	}
	if e.exitWAL != nil {
		if err := e.exitWAL.PurgeAcked(); err != nil {
			e.log.Warn("outbox purge failed", zap.Error(err))
		}
	}

	e.log.Debug("snapshot written",
		zap.Uint64("seq", seq), zap.Int("orders", len(snap.Orders)))
}
