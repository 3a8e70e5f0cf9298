// Package persistence implements the durable side of the bank: a JSON
// snapshot codec per entity type, the generic entity store engine built on
// it, identifier-assignment strategies, and the repository registry that
// wires one configured store per entity type.
package persistence

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"
)

// snapshotVersion identifies the on-disk snapshot schema
const snapshotVersion = 1

// Snapshot is the serializable representation of a store's live set.
// An empty live set still serializes to a recognizable empty-collection
// document rather than an absent file.
type Snapshot[T any] struct {
	Meta     SnapshotMeta `json:"_meta"`
	Entities []T          `json:"entities"`
}

// SnapshotMeta carries bookkeeping fields for schema migration
type SnapshotMeta struct {
	Entity  string    `json:"entity"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// SaveSnapshot serializes the entities to path as an indented JSON document.
// The write is atomic: the document goes to a temporary file first and then
// replaces the target via rename, so a crash mid-write never corrupts an
// existing snapshot.
func SaveSnapshot[T any](path, entity string, entities []T) error {
	if entities == nil {
		entities = []T{}
	}
	snap := Snapshot[T]{
		Meta: SnapshotMeta{
			Entity:  entity,
			Version: snapshotVersion,
			SavedAt: time.Now(),
		},
		Entities: entities,
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot reads a snapshot document back from path.
//
// A missing file is not an error: the store starts from an empty collection
// the first time it runs. A present but unreadable or unparseable file is
// reported through the returned error together with an empty collection, so
// the caller can log the condition and keep the store usable.
func LoadSnapshot[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return []T{}, err
	}
	defer f.Close()

	var snap Snapshot[T]
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return []T{}, err
	}
	if snap.Entities == nil {
		return []T{}, nil
	}
	return snap.Entities, nil
}
