package idgen

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeRejectsBadWorker(t *testing.T) {
	_, err := NewSnowflake(-1)
	assert.Error(t, err)
	_, err = NewSnowflake(MaxWorkerID + 1)
	assert.Error(t, err)
}

func TestGenerateIsUniqueUnderConcurrency(t *testing.T) {
	sf, err := NewSnowflake(7)
	require.NoError(t, err)

	const workers, perWorker = 8, 500
	ids := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- sf.Generate()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, workers*perWorker)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestGenerateMonotonicWhenClockSteps(t *testing.T) {
	sf, err := NewSnowflake(1)
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := []time.Time{base, base, base.Add(-time.Second)}
	i := 0
	sf.now = func() time.Time {
		t := clock[i]
		if i < len(clock)-1 {
			i++
		}
		return t
	}

	a := sf.Generate()
	b := sf.Generate()
	c := sf.Generate()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestJournalNumber(t *testing.T) {
	sf, err := NewSnowflake(1)
	require.NoError(t, err)

	n := sf.JournalNumber(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(n, "JE-20250301-"), n)
	assert.NotEqual(t, n, sf.JournalNumber(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}
