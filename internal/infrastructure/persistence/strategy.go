package persistence

import (
	"math/rand/v2"
	"strings"
	"sync/atomic"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
)

// IdentifierStrategy decides how a store assigns identifiers on create.
// Seed is called once after the snapshot load with every persisted entity,
// live and tombstoned, so identifiers are never reused across restarts or
// soft-delete/restore cycles.
type IdentifierStrategy[T any, ID comparable] interface {
	Seed(existing []T)
	Assign(entity *T, taken func(ID) bool) error
}

// Sequence assigns monotonically increasing numeric identifiers.
// The counter only moves forward; identifiers of deleted entities are
// never handed out again.
type Sequence[T any] struct {
	next atomic.Int64
	get  func(*T) int64
	set  func(*T, int64)
}

// NewSequence creates a sequence strategy with accessors for the entity's
// numeric identifier field.
func NewSequence[T any](get func(*T) int64, set func(*T, int64)) *Sequence[T] {
	return &Sequence[T]{get: get, set: set}
}

// Seed advances the counter to the maximum identifier already in use
func (s *Sequence[T]) Seed(existing []T) {
	var max int64
	for i := range existing {
		if id := s.get(&existing[i]); id > max {
			max = id
		}
	}
	for {
		cur := s.next.Load()
		if cur >= max || s.next.CompareAndSwap(cur, max) {
			return
		}
	}
}

// Assign sets the next counter value as the entity's identifier
func (s *Sequence[T]) Assign(entity *T, _ func(int64) bool) error {
	s.set(entity, s.next.Add(1))
	return nil
}

// maxGenerationAttempts bounds collision regeneration for random identifiers
const maxGenerationAttempts = 100

// FormattedRandom assigns domain-formatted identifiers: a fixed prefix
// followed by a fixed-width random digit sequence (IBAN-like account
// numbers, 16-digit card numbers). A caller-supplied identifier is kept
// when it is present and unused; otherwise a fresh one is generated,
// regenerating on collision.
type FormattedRandom[T any] struct {
	prefix string
	digits int
	get    func(*T) string
	set    func(*T, string)
}

// NewFormattedRandom creates a formatted-random strategy with accessors for
// the entity's string identifier field.
func NewFormattedRandom[T any](prefix string, digits int, get func(*T) string, set func(*T, string)) *FormattedRandom[T] {
	return &FormattedRandom[T]{prefix: prefix, digits: digits, get: get, set: set}
}

// Seed is a no-op: random identifiers carry no counter state
func (s *FormattedRandom[T]) Seed([]T) {}

// Assign keeps an unused caller-supplied identifier or generates a new one
func (s *FormattedRandom[T]) Assign(entity *T, taken func(string) bool) error {
	if supplied := s.get(entity); supplied != "" && !taken(supplied) {
		return nil
	}
	for range maxGenerationAttempts {
		candidate := s.generate()
		if !taken(candidate) {
			s.set(entity, candidate)
			return nil
		}
	}
	return shared.NewDomainError("IDENTIFIER_EXHAUSTED", "Could not allocate a unique identifier")
}

func (s *FormattedRandom[T]) generate() string {
	var b strings.Builder
	b.Grow(len(s.prefix) + s.digits)
	b.WriteString(s.prefix)
	for range s.digits {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
