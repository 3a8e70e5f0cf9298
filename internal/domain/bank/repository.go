package bank

import (
	"context"
)

// Repository is the persistence contract shared by every entity store:
// create/read/soft-delete/restore with an audit trail. Normal reads see only
// live entities; soft-deleted ones are visible through ListDeleted until
// restored. Every result is an independent copy of store state.
type Repository[T any, ID comparable, K ~string] interface {
	// Create assigns an identifier to the entity, adds it to the live set
	// and writes an audit record of the given kind.
	Create(ctx context.Context, entity *T, op K) (*T, error)

	// FindByID returns the live entity with the given identifier
	FindByID(ctx context.Context, id ID) (*T, error)

	// FindAll returns all live entities in insertion order
	FindAll(ctx context.Context) ([]T, error)

	// FindFirst returns the first live entity matching the predicate
	FindFirst(ctx context.Context, pred func(T) bool) (*T, error)

	// FindAllBy returns all live entities matching the predicate
	FindAllBy(ctx context.Context, pred func(T) bool) ([]T, error)

	// Update replaces the live entity with the same identifier
	Update(ctx context.Context, entity *T, op K) (*T, error)

	// SoftDelete moves the entity from the live set to the tombstone set
	// and returns the removed snapshot
	SoftDelete(ctx context.Context, id ID, op K) (*T, error)

	// Restore moves a tombstoned entity back to the live set
	Restore(ctx context.Context, id ID, op K) (*T, error)

	// Count returns the size of the live set
	Count(ctx context.Context) (int64, error)

	// ListDeleted returns a snapshot of the tombstone set
	ListDeleted(ctx context.Context) ([]T, error)

	// Flush forces a snapshot write outside the mutation threshold.
	// It is a no-op when the live set is empty.
	Flush(ctx context.Context) error

	// SetCurrentUser attaches an identity to subsequently written audit
	// records. The setting is store-scoped, not per call.
	SetCurrentUser(user string)
}

// Typed repositories for each entity of the bank domain.
type (
	ClientRepository      = Repository[Client, int64, ClientOperation]
	AccountRepository     = Repository[Account, string, AccountOperation]
	CardRepository        = Repository[Card, string, CardOperation]
	TransactionRepository = Repository[Transaction, int64, TransactionOperation]
)
