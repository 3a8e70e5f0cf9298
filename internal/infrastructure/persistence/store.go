package persistence

import (
	"context"
	"sync"

	"github.com/gerSanzag/mibanco/internal/domain/audit"
	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultFlushThreshold is the number of mutations between snapshot writes
const DefaultFlushThreshold = 10

// recordStatus marks a stored record as live or tombstoned
type recordStatus uint8

const (
	statusLive recordStatus = iota
	statusDeleted
)

// storeRecord is one arena slot. Soft deletion flips the status flag in
// place instead of moving the entity between collections, so each
// identifier has a single source of truth and insertion order survives
// delete/restore cycles.
type storeRecord[T any] struct {
	entity T
	status recordStatus
}

// Config wires one entity store: where it persists, what it holds and how
// identifiers are assigned. EntityName and IdentityOf are mandatory; a
// store missing either fails every operation with ErrStoreMisconfigured.
// An empty Path degrades gracefully to an in-memory store.
type Config[T any, ID comparable] struct {
	// Path is the snapshot file backing the store. Empty disables persistence.
	Path string
	// EntityName identifies the entity type in snapshots and log output
	EntityName string
	// IdentityOf extracts the identifier from an entity
	IdentityOf func(T) ID
	// Strategy assigns identifiers on create. Nil means identifiers are
	// taken from the caller-supplied entity as-is.
	Strategy IdentifierStrategy[T, ID]
	// FlushThreshold is the mutation count that triggers a snapshot write.
	// Zero or negative selects DefaultFlushThreshold.
	FlushThreshold int
	// Logger receives load/flush diagnostics. Nil selects a no-op logger.
	Logger *zap.Logger
}

// Store is the generic entity store engine: create/read/soft-delete/restore
// semantics over an in-memory arena, lazily loaded from a JSON snapshot
// file, flushed back every FlushThreshold mutations, with every mutation
// appended to an audit log.
//
// All operations are synchronous and guarded by a single mutex; the flush
// triggered by the mutation counter runs on the calling goroutine. Query
// results are independent copies of store state.
type Store[T any, ID comparable, K ~string] struct {
	cfg   Config[T, ID]
	trail *audit.Log[T, ID, K]

	mu        sync.Mutex
	loaded    bool
	records   []storeRecord[T]
	index     map[ID]int
	mutations int
	user      string
}

// NewStore creates a store from its configuration. Configuration problems
// are programming errors and surface on the first operation, not here.
func NewStore[T any, ID comparable, K ~string](cfg Config[T, ID]) *Store[T, ID, K] {
	if cfg.FlushThreshold <= 0 {
		cfg.FlushThreshold = DefaultFlushThreshold
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	var trail *audit.Log[T, ID, K]
	if cfg.IdentityOf != nil {
		trail = audit.NewLog[T, ID, K](cfg.IdentityOf)
	}
	return &Store[T, ID, K]{
		cfg:   cfg,
		trail: trail,
		index: make(map[ID]int),
	}
}

// Audit exposes the store's audit trail for queries
func (s *Store[T, ID, K]) Audit() *audit.Log[T, ID, K] {
	return s.trail
}

// SetCurrentUser attaches an identity to subsequently written audit records
func (s *Store[T, ID, K]) SetCurrentUser(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Create assigns an identifier, adds the entity to the live set, writes an
// audit record and counts one mutation.
func (s *Store[T, ID, K]) Create(ctx context.Context, entity *T, op K) (*T, error) {
	if entity == nil {
		return nil, shared.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	stored := *entity
	taken := func(id ID) bool {
		_, ok := s.index[id]
		return ok
	}
	if s.cfg.Strategy != nil {
		if err := s.cfg.Strategy.Assign(&stored, taken); err != nil {
			return nil, err
		}
	}
	id := s.cfg.IdentityOf(stored)
	if taken(id) {
		return nil, shared.ErrAlreadyExists
	}

	s.records = append(s.records, storeRecord[T]{entity: stored})
	s.index[id] = len(s.records) - 1

	snapshot := stored
	s.appendAudit(op, &snapshot)
	s.countMutation()
	out := stored
	return &out, nil
}

// FindByID returns the live entity with the given identifier
func (s *Store[T, ID, K]) FindByID(ctx context.Context, id ID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	pos, ok := s.index[id]
	if !ok || s.records[pos].status != statusLive {
		return nil, shared.ErrNotFound
	}
	out := s.records[pos].entity
	return &out, nil
}

// FindAll returns all live entities in insertion order
func (s *Store[T, ID, K]) FindAll(ctx context.Context) ([]T, error) {
	return s.collect(statusLive, nil)
}

// FindFirst returns the first live entity matching the predicate
func (s *Store[T, ID, K]) FindFirst(ctx context.Context, pred func(T) bool) (*T, error) {
	if pred == nil {
		return nil, shared.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	for i := range s.records {
		if s.records[i].status == statusLive && pred(s.records[i].entity) {
			out := s.records[i].entity
			return &out, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAllBy returns all live entities matching the predicate
func (s *Store[T, ID, K]) FindAllBy(ctx context.Context, pred func(T) bool) ([]T, error) {
	if pred == nil {
		return nil, shared.ErrInvalidInput
	}
	return s.collect(statusLive, pred)
}

// Update replaces the live entity carrying the same identifier
func (s *Store[T, ID, K]) Update(ctx context.Context, entity *T, op K) (*T, error) {
	if entity == nil {
		return nil, shared.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	stored := *entity
	id := s.cfg.IdentityOf(stored)
	pos, ok := s.index[id]
	if !ok || s.records[pos].status != statusLive {
		return nil, shared.ErrNotFound
	}
	s.records[pos].entity = stored

	snapshot := stored
	s.appendAudit(op, &snapshot)
	s.countMutation()
	out := stored
	return &out, nil
}

// SoftDelete moves the entity from the live set to the tombstone set and
// returns the removed snapshot. The identifier stays reserved.
func (s *Store[T, ID, K]) SoftDelete(ctx context.Context, id ID, op K) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	pos, ok := s.index[id]
	if !ok || s.records[pos].status != statusLive {
		return nil, shared.ErrNotFound
	}
	s.records[pos].status = statusDeleted

	snapshot := s.records[pos].entity
	s.appendAudit(op, &snapshot)
	s.countMutation()
	out := s.records[pos].entity
	return &out, nil
}

// Restore moves a tombstoned entity back to the live set
func (s *Store[T, ID, K]) Restore(ctx context.Context, id ID, op K) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	pos, ok := s.index[id]
	if !ok || s.records[pos].status != statusDeleted {
		return nil, shared.ErrNotFound
	}
	s.records[pos].status = statusLive

	snapshot := s.records[pos].entity
	s.appendAudit(op, &snapshot)
	s.countMutation()
	out := s.records[pos].entity
	return &out, nil
}

// Count returns the size of the live set
func (s *Store[T, ID, K]) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}
	var n int64
	for i := range s.records {
		if s.records[i].status == statusLive {
			n++
		}
	}
	return n, nil
}

// ListDeleted returns a snapshot of the tombstone set in insertion order
func (s *Store[T, ID, K]) ListDeleted(ctx context.Context) ([]T, error) {
	return s.collect(statusDeleted, nil)
}

// Flush writes the live set to the backing file regardless of the mutation
// counter. It is a no-op when the live set is empty.
func (s *Store[T, ID, K]) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	empty := true
	for i := range s.records {
		if s.records[i].status == statusLive {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}
	if err := s.persist(); err != nil {
		return err
	}
	s.mutations = 0
	return nil
}

// ensureLoaded lazily initializes the arena from the snapshot file.
// Caller must hold s.mu.
func (s *Store[T, ID, K]) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	if s.cfg.EntityName == "" || s.cfg.IdentityOf == nil {
		return shared.ErrStoreMisconfigured
	}

	var entities []T
	if s.cfg.Path != "" {
		var err error
		entities, err = LoadSnapshot[T](s.cfg.Path)
		if err != nil {
			// Unreadable snapshots degrade to an empty collection so the
			// store stays usable; the condition is for operators to act on.
			s.cfg.Logger.Warn("snapshot unreadable, starting empty",
				zap.String("entity", s.cfg.EntityName),
				zap.String("path", s.cfg.Path),
				zap.Error(err),
			)
			entities = nil
		}
	}

	s.records = make([]storeRecord[T], 0, len(entities))
	s.index = make(map[ID]int, len(entities))
	for _, e := range entities {
		id := s.cfg.IdentityOf(e)
		if _, dup := s.index[id]; dup {
			s.cfg.Logger.Warn("duplicate identifier in snapshot, keeping first",
				zap.String("entity", s.cfg.EntityName),
				zap.Any("id", id),
			)
			continue
		}
		s.records = append(s.records, storeRecord[T]{entity: e})
		s.index[id] = len(s.records) - 1
	}
	if s.cfg.Strategy != nil {
		s.cfg.Strategy.Seed(entities)
	}
	s.loaded = true
	return nil
}

// appendAudit registers a mutation in the audit trail. Caller holds s.mu.
func (s *Store[T, ID, K]) appendAudit(op K, snapshot *T) {
	rec := audit.NewRecord(op, snapshot, s.user)
	if _, err := s.trail.Register(rec); err != nil {
		s.cfg.Logger.Error("audit register failed",
			zap.String("entity", s.cfg.EntityName),
			zap.Error(err),
		)
	}
}

// countMutation advances the mutation counter and flushes at the threshold.
// Flush failures are logged, not raised: the counter stays put so the next
// mutation retries the write. Caller holds s.mu.
func (s *Store[T, ID, K]) countMutation() {
	s.mutations++
	if s.mutations < s.cfg.FlushThreshold {
		return
	}
	if err := s.persist(); err != nil {
		s.cfg.Logger.Error("snapshot write failed",
			zap.String("entity", s.cfg.EntityName),
			zap.String("path", s.cfg.Path),
			zap.Error(err),
		)
		return
	}
	s.mutations = 0
}

// persist writes the live set to the backing file. Caller holds s.mu.
func (s *Store[T, ID, K]) persist() error {
	if s.cfg.Path == "" {
		s.cfg.Logger.Debug("no backing file configured, skipping flush",
			zap.String("entity", s.cfg.EntityName),
		)
		return nil
	}
	live := make([]T, 0, len(s.records))
	for i := range s.records {
		if s.records[i].status == statusLive {
			live = append(live, s.records[i].entity)
		}
	}
	if err := SaveSnapshot(s.cfg.Path, s.cfg.EntityName, live); err != nil {
		return err
	}
	s.cfg.Logger.Debug("snapshot written",
		zap.String("entity", s.cfg.EntityName),
		zap.Int("entities", len(live)),
	)
	return nil
}

// collect copies out every record with the wanted status, optionally
// filtered by a predicate.
func (s *Store[T, ID, K]) collect(want recordStatus, pred func(T) bool) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for i := range s.records {
		if s.records[i].status != want {
			continue
		}
		if pred != nil && !pred(s.records[i].entity) {
			continue
		}
		out = append(out, s.records[i].entity)
	}
	return out, nil
}
