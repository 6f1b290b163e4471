package ports

import (
	"context"
	"errors"
)

// ErrLockHeld is returned by IdempotencyLocker when another caller holds the key.
var ErrLockHeld = errors.New("idempotency lock held by another request")

// IdempotencyLocker serialises work on one idempotency key across processes.
type IdempotencyLocker interface {
	// Acquire takes the lock for key. The returned release must be called once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// FinanceEvent is a notification emitted after a financial record changes.
type FinanceEvent struct {
	Type           string `json:"type"`
	RecordID       string `json:"recordId"`
	JournalEntryID string `json:"journalEntryId,omitempty"`
	RecordType     string `json:"recordType"`
	Category       string `json:"category"`
	Amount         string `json:"amount"`
	ReferenceType  string `json:"referenceType,omitempty"`
	Reference      string `json:"reference,omitempty"`
	Error          string `json:"error,omitempty"`
	OccurredAt     string `json:"occurredAt"`
}

const (
	EventRecordCreated   = "finance.record.created"
	EventJournalUnlinked = "finance.journal.unlinked"
	EventJournalRelinked = "finance.journal.relinked"
)

// EventPublisher delivers finance events. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event FinanceEvent) error
}
