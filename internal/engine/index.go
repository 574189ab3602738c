package engine

import (
	"sync"

	"alertmon/internal/models"

	"github.com/google/uuid"
)

// entry pairs an alert with the mutex that serializes every mutation of
// it: lifecycle operations, duplicate updates, and timer callbacks all
// take entry.mu before touching the alert, so check-then-act sequences
// never interleave on the same alert.
type entry struct {
	mu      sync.Mutex
	alert   *models.Alert
	evicted bool // set under mu when the entry leaves the index
}

// ActiveIndex is the concurrent fingerprint -> alert map that is the
// single source of truth for dedup. Lookup on an unknown fingerprint is
// "not found", never an error.
type ActiveIndex struct {
	mu            sync.RWMutex
	byFingerprint map[string]*entry
	byID          map[uuid.UUID]*entry
}

func NewActiveIndex() *ActiveIndex {
	return &ActiveIndex{
		byFingerprint: make(map[string]*entry),
		byID:          make(map[uuid.UUID]*entry),
	}
}

func (idx *ActiveIndex) Lookup(fingerprint string) (*entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.byFingerprint[fingerprint]
	return e, ok
}

func (idx *ActiveIndex) LookupID(id uuid.UUID) (*entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.byID[id]
	return e, ok
}

// InsertIfAbsent inserts a new entry for the alert unless its fingerprint
// is already present. Returns the winning entry and whether this call
// inserted it; a losing caller must treat the existing entry as the
// duplicate target.
func (idx *ActiveIndex) InsertIfAbsent(alert *models.Alert) (*entry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if existing, ok := idx.byFingerprint[alert.Fingerprint]; ok {
		return existing, false
	}
	e := &entry{alert: alert}
	idx.byFingerprint[alert.Fingerprint] = e
	idx.byID[alert.ID] = e
	return e, true
}

// Remove evicts the entry from both maps. The caller must hold e.mu so
// the eviction is atomic with the terminal transition that caused it.
func (idx *ActiveIndex) Remove(e *entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if cur, ok := idx.byFingerprint[e.alert.Fingerprint]; ok && cur == e {
		delete(idx.byFingerprint, e.alert.Fingerprint)
	}
	delete(idx.byID, e.alert.ID)
	e.evicted = true
}

// Snapshot returns the current entries. Callers lock each entry before
// reading its alert.
func (idx *ActiveIndex) Snapshot() []*entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	entries := make([]*entry, 0, len(idx.byID))
	for _, e := range idx.byID {
		entries = append(entries, e)
	}
	return entries
}

func (idx *ActiveIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.byID)
}
