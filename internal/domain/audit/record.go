package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is an immutable audit trail entry for one store operation.
// It is generic over the audited entity type and the operation-kind
// enumeration of the store that produced it. Once registered a record is
// never updated, only appended and queried.
type Record[T any, K ~string] struct {
	ID        uuid.UUID        `json:"id"`
	Kind      K                `json:"kind"`
	Timestamp time.Time        `json:"timestamp"`
	Snapshot  *T               `json:"snapshot,omitempty"`
	User      string           `json:"user,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Details   string           `json:"details,omitempty"`
}

// NewRecord builds an audit record with a fresh random identifier.
// The identifier space is independent of any entity identifier space.
func NewRecord[T any, K ~string](kind K, snapshot *T, user string) *Record[T, K] {
	return &Record[T, K]{
		ID:        uuid.New(),
		Kind:      kind,
		Timestamp: time.Now(),
		Snapshot:  snapshot,
		User:      user,
	}
}

// WithAmount attaches a monetary amount to the record
func (r *Record[T, K]) WithAmount(amount decimal.Decimal) *Record[T, K] {
	r.Amount = &amount
	return r
}

// WithDetails attaches free-form details to the record
func (r *Record[T, K]) WithDetails(details string) *Record[T, K] {
	r.Details = details
	return r
}

// copy returns an independent copy of the record, including its snapshot
func (r Record[T, K]) copy() Record[T, K] {
	if r.Snapshot != nil {
		snap := *r.Snapshot
		r.Snapshot = &snap
	}
	if r.Amount != nil {
		amount := *r.Amount
		r.Amount = &amount
	}
	return r
}
