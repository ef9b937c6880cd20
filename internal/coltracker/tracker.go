// Package coltracker detects duplicate column names in O(1) by hashing
// names with xxHash64 instead of a linear name-by-name scan.
package coltracker

import (
	"github.com/solidxbase/dbase/errs"
	"github.com/solidxbase/dbase/internal/hash"
)

// Tracker tracks the column names added to a Schema and rejects
// duplicates. Because a hash collision (two distinct names hashing to
// the same 64-bit value) is not itself a duplicate, the tracker keeps
// the actual name alongside the hash and compares both before reporting
// one.
type Tracker struct {
	byHash map[uint64]string // hash(name) → name, for collision-safe duplicate checks
	names  []string          // names in insertion order
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string),
	}
}

// Add registers name, returning errs.ErrColumnDuplicate if it was already
// tracked.
func (t *Tracker) Add(name string) error {
	id := hash.ID(name)
	if existing, ok := t.byHash[id]; ok {
		if existing == name {
			return errs.ErrColumnDuplicate
		}

		// A genuine hash collision (different name, same hash) is
		// vanishingly unlikely. The bucket only remembers the latest name,
		// so fall back to a scan of every tracked name.
		for _, n := range t.names {
			if n == name {
				return errs.ErrColumnDuplicate
			}
		}
	}

	t.byHash[id] = name
	t.names = append(t.names, name)

	return nil
}

// Count returns the number of distinct names tracked.
func (t *Tracker) Count() int {
	return len(t.names)
}
