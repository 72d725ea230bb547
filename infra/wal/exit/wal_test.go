package exit

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestOutbox(t *testing.T) *ExitWAL {
	t.Helper()
	w, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestPutGet(t *testing.T) {
	w := openTestOutbox(t)

	require.NoError(t, w.Put(1, []byte(`{"seq":1}`)))

	rec, err := w.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rec.Seq)
	assert.Equal(t, StateNew, rec.State)
	assert.Equal(t, uint32(0), rec.Retries)
	assert.Equal(t, `{"seq":1}`, string(rec.Payload))

	_, err = w.Get(42)
	assert.ErrorIs(t, err, pebble.ErrNotFound)
}

func TestStateTransitions(t *testing.T) {
	w := openTestOutbox(t)
	require.NoError(t, w.Put(1, []byte("x")))

	require.NoError(t, w.MarkSent(1))
	rec, err := w.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StateSent, rec.State)
	assert.Equal(t, uint32(1), rec.Retries)
	assert.NotZero(t, rec.LastAttempt)

	// A retry bumps the counter again.
	require.NoError(t, w.MarkSent(1))
	rec, err = w.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), rec.Retries)

	require.NoError(t, w.MarkAcked(1))
	rec, err = w.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StateAcked, rec.State)

	assert.Error(t, w.MarkSent(99))
}

func TestScanPending(t *testing.T) {
	w := openTestOutbox(t)

	require.NoError(t, w.Put(3, []byte("c")))
	require.NoError(t, w.Put(1, []byte("a")))
	require.NoError(t, w.Put(2, []byte("b")))
	require.NoError(t, w.MarkSent(2))
	require.NoError(t, w.MarkAcked(2))

	var seqs []uint64
	err := w.ScanPending(func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	require.NoError(t, err)

	// Sequence order, acked records skipped.
	assert.Equal(t, []uint64{1, 3}, seqs)
}

func TestPurgeAcked(t *testing.T) {
	w := openTestOutbox(t)

	require.NoError(t, w.Put(1, []byte("a")))
	require.NoError(t, w.Put(2, []byte("b")))
	require.NoError(t, w.MarkSent(1))
	require.NoError(t, w.MarkAcked(1))

	require.NoError(t, w.PurgeAcked())

	_, err := w.Get(1)
	assert.ErrorIs(t, err, pebble.ErrNotFound)

	rec, err := w.Get(2)
	require.NoError(t, err)
	assert.Equal(t, StateNew, rec.State)
}

func TestMarkFailed(t *testing.T) {
	w := openTestOutbox(t)
	require.NoError(t, w.Put(1, []byte("a")))
	require.NoError(t, w.MarkFailed(1))

	rec, err := w.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StateFailed, rec.State)

	// Failed records are still pending; an operator can retry them.
	var seen int
	require.NoError(t, w.ScanPending(func(*Record) error {
		seen++
		return nil
	}))
	assert.Equal(t, 1, seen)
}
