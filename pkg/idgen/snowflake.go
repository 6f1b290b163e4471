// Package idgen generates time-ordered numeric identifiers for journal numbers.
//
// Layout of a 63-bit id: 41 bits of milliseconds since 2024-01-01 UTC,
// 10 bits of worker id, 12 bits of per-millisecond sequence.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

const (
	epoch          = int64(1704067200000)
	workerIDBits   = 10
	sequenceBits   = 12
	MaxWorkerID    = -1 ^ (-1 << workerIDBits)
	maxSequence    = -1 ^ (-1 << sequenceBits)
	workerIDShift  = sequenceBits
	timestampShift = sequenceBits + workerIDBits
)

// Snowflake is safe for concurrent use.
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	workerID  int64
	sequence  int64
	now       func() time.Time
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, fmt.Errorf("worker id must be between 0 and %d, got %d", MaxWorkerID, workerID)
	}
	return &Snowflake{workerID: workerID, now: time.Now}, nil
}

// Generate returns the next id. Within one millisecond ids are strictly
// increasing; when the sequence is exhausted it waits for the next millisecond.
func (s *Snowflake) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	if now < s.timestamp {
		// clock went backwards; stay on the last timestamp
		now = s.timestamp
	}

	if now == s.timestamp {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for now <= s.timestamp {
				now = s.now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.timestamp = now

	return ((now - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

// JournalNumber formats a human readable, unique journal number for the
// given entry date, e.g. JE-20250301-78651235418112.
func (s *Snowflake) JournalNumber(date time.Time) string {
	return fmt.Sprintf("JE-%s-%d", date.Format("20060102"), s.Generate())
}
