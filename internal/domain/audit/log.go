// Package audit provides the append-only operation log that instruments
// every entity store. The log is in-memory and process-scoped; durable
// state lives in the stores' snapshot files.
package audit

import (
	"sync"
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/google/uuid"
)

// Log is an append-only collection of audit records for one entity store.
// ID is the identifier type of the audited entity, used to match history
// queries against record snapshots.
//
// Filter queries are deliberately conservative: an absent filter argument
// (nil time bound, empty user, zero-valued kind) yields an empty result,
// never the full log and never an error.
type Log[T any, ID comparable, K ~string] struct {
	mu         sync.RWMutex
	records    []Record[T, K]
	identityOf func(T) ID
}

// NewLog creates an empty audit log. identityOf extracts the entity
// identifier from a record snapshot for history queries.
func NewLog[T any, ID comparable, K ~string](identityOf func(T) ID) *Log[T, ID, K] {
	return &Log[T, ID, K]{identityOf: identityOf}
}

// Register appends a record to the log. The record's identifier must
// already be set; registration assigns nothing.
func (l *Log[T, ID, K]) Register(record *Record[T, K]) (*Record[T, K], error) {
	if record == nil {
		return nil, shared.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record.copy())
	return record, nil
}

// FindByID returns the record with the given identifier
func (l *Log[T, ID, K]) FindByID(id uuid.UUID) (*Record[T, K], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := range l.records {
		if l.records[i].ID == id {
			rec := l.records[i].copy()
			return &rec, nil
		}
	}
	return nil, shared.ErrNotFound
}

// History returns all records whose snapshot carries the given entity
// identifier, in registration order. Records without a snapshot are
// excluded, never matched by convention.
func (l *Log[T, ID, K]) History(id ID) ([]Record[T, K], error) {
	return l.filter(func(r Record[T, K]) bool {
		return r.Snapshot != nil && l.identityOf(*r.Snapshot) == id
	})
}

// FindByDateRange returns records whose timestamp falls inside [from, to],
// inclusive on both ends. A nil bound or an inverted range yields an empty
// result. Records with a zero timestamp never match.
func (l *Log[T, ID, K]) FindByDateRange(from, to *time.Time) ([]Record[T, K], error) {
	if from == nil || to == nil || from.After(*to) {
		return []Record[T, K]{}, nil
	}
	return l.filter(func(r Record[T, K]) bool {
		if r.Timestamp.IsZero() {
			return false
		}
		return !r.Timestamp.Before(*from) && !r.Timestamp.After(*to)
	})
}

// FindByUser returns records registered under the given user identity.
// An empty user yields an empty result.
func (l *Log[T, ID, K]) FindByUser(user string) ([]Record[T, K], error) {
	if user == "" {
		return []Record[T, K]{}, nil
	}
	return l.filter(func(r Record[T, K]) bool {
		return r.User == user
	})
}

// FindByKind returns records of the given operation kind.
// A zero-valued kind yields an empty result.
func (l *Log[T, ID, K]) FindByKind(kind K) ([]Record[T, K], error) {
	if kind == *new(K) {
		return []Record[T, K]{}, nil
	}
	return l.filter(func(r Record[T, K]) bool {
		return r.Kind == kind
	})
}

// Records returns every registered record in registration order
func (l *Log[T, ID, K]) Records() []Record[T, K] {
	out, _ := l.filter(func(Record[T, K]) bool { return true })
	return out
}

// Size returns the number of registered records
func (l *Log[T, ID, K]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

func (l *Log[T, ID, K]) filter(match func(Record[T, K]) bool) ([]Record[T, K], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record[T, K], 0)
	for i := range l.records {
		if match(l.records[i]) {
			out = append(out, l.records[i].copy())
		}
	}
	return out, nil
}
