package sequence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	s := New(0)
	assert.Equal(t, uint64(0), s.Current())
	assert.Equal(t, uint64(1), s.Next())
	assert.Equal(t, uint64(2), s.Next())
	assert.Equal(t, uint64(2), s.Current())

	s.Reset(100)
	assert.Equal(t, uint64(100), s.Current())
	assert.Equal(t, uint64(101), s.Next())
}

func TestSequencerConcurrent(t *testing.T) {
	const (
		workers = 8
		perG    = 1000
	)

	s := New(0)
	var wg sync.WaitGroup
	seen := make([]map[uint64]bool, workers)

	for i := 0; i < workers; i++ {
		seen[i] = make(map[uint64]bool, perG)
		wg.Add(1)
		go func(m map[uint64]bool) {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m[s.Next()] = true
			}
		}(seen[i])
	}
	wg.Wait()

	all := make(map[uint64]bool, workers*perG)
	for _, m := range seen {
		for v := range m {
			assert.False(t, all[v], "duplicate sequence %d", v)
			all[v] = true
		}
	}
	assert.Len(t, all, workers*perG)
	assert.Equal(t, uint64(workers*perG), s.Current())
}
