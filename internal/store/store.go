// Package store implements the generic entity store: an in-memory collection
// of domain records backed by a persisted snapshot, with seed-on-empty,
// overlay updates, and synchronous write-through on every mutation.
package store

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lexhall/lawdesk/internal/storage"
)

// Patcher applies a partial update to a record in place. Patch structs use
// pointer fields; nil fields leave the record unchanged.
type Patcher[T any] interface {
	Apply(*T)
}

// Descriptor configures a Store for one entity type. T is the record type,
// D the draft type accepted by Add.
type Descriptor[T any, D any] struct {
	// Slot is the collection name; the persisted key is storage.Key(Slot)
	// and the sequence counters live under storage.Key(Slot) + ".seq".
	Slot string

	// Seed is the built-in default collection persisted when the slot is
	// empty on first load.
	Seed []T

	// SeedSeq holds the named sequence counters as of the seed collection,
	// so generated ids and business numbers continue from the seed.
	SeedSeq map[string]int

	// ID extracts a record's id for Update and Remove matching.
	ID func(T) string

	// Finalize builds a full record from a draft, drawing generated ids
	// and numbers from the sequence.
	Finalize func(D, *Seq) T
}

// Seq hands out monotonic sequence numbers by name. Counters are persisted
// alongside the collection, so delete-then-add can never reuse an id.
type Seq struct {
	counters map[string]int
}

// Next increments and returns the named counter.
func (s *Seq) Next(name string) int {
	if s.counters == nil {
		s.counters = make(map[string]int)
	}
	s.counters[name]++
	return s.counters[name]
}

// Store owns the authoritative in-memory collection for one entity type.
// All mutations persist the whole collection synchronously before returning.
// A storage failure is reported once, after which the store degrades to
// in-memory-only operation for the rest of the session; the in-memory
// mutation has always already been applied when an error is returned.
type Store[T any, D any] struct {
	mu       sync.Mutex
	desc     Descriptor[T, D]
	adapter  storage.Adapter
	log      zerolog.Logger
	loaded   bool
	degraded bool
	records  []T
	seq      *Seq
}

// New creates a Store over the given adapter. The collection is not read
// until the first operation.
func New[T any, D any](desc Descriptor[T, D], adapter storage.Adapter, log zerolog.Logger) *Store[T, D] {
	return &Store[T, D]{
		desc:    desc,
		adapter: adapter,
		log:     log.With().Str("slot", desc.Slot).Logger(),
	}
}

// Load reads the persisted collection, seeding and persisting the built-in
// default when the slot is absent. Idempotent: repeated loads before any
// mutation return the same content. A storage.ErrStorageUnavailable error
// means the store fell back to the seed in memory; it remains usable.
func (s *Store[T, D]) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoadedLocked()
}

func (s *Store[T, D]) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}
	s.loaded = true
	s.seq = &Seq{counters: make(map[string]int)}
	for k, v := range s.desc.SeedSeq {
		s.seq.counters[k] = v
	}

	data, ok, err := s.adapter.Read(storage.Key(s.desc.Slot))
	if err != nil {
		s.noteStorageFailureLocked("load", err)
		s.records = append([]T(nil), s.desc.Seed...)
		return err
	}
	if !ok {
		// First run: seed and persist immediately.
		s.records = append([]T(nil), s.desc.Seed...)
		return s.persistLocked()
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		// Malformed slot data. Fall back to the seed rather than surface
		// a parse error to the caller.
		s.log.Warn().Err(err).Msg("persisted collection is malformed; reseeding")
		s.records = append([]T(nil), s.desc.Seed...)
		return s.persistLocked()
	}
	s.records = records

	if seqData, ok, err := s.adapter.Read(storage.Key(s.desc.Slot) + ".seq"); err == nil && ok {
		var counters map[string]int
		if err := json.Unmarshal(seqData, &counters); err == nil {
			s.seq.counters = counters
		}
	}
	return nil
}

// Snapshot returns a copy of the current collection in storage order.
func (s *Store[T, D]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()
	return append([]T(nil), s.records...)
}

// Get returns the record with the given id, if present.
func (s *Store[T, D]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()
	for _, rec := range s.records {
		if s.desc.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Add finalizes the draft into a full record, appends it, persists, and
// returns the finalized record.
func (s *Store[T, D]) Add(draft D) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()

	rec := s.desc.Finalize(draft, s.seq)
	s.records = append(s.records, rec)
	return rec, s.persistLocked()
}

// Update overlays the patch onto the record with the given id and persists.
// An absent id is a silent no-op (ok=false): the triggering caller holds a
// stale reference and there is nothing to report.
func (s *Store[T, D]) Update(id string, patch Patcher[T]) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()

	for i := range s.records {
		if s.desc.ID(s.records[i]) == id {
			patch.Apply(&s.records[i])
			return s.records[i], true, s.persistLocked()
		}
	}
	var zero T
	return zero, false, nil
}

// Remove filters the id out of the collection and persists. No-op (ok=false)
// if the id is absent.
func (s *Store[T, D]) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()

	for i := range s.records {
		if s.desc.ID(s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, s.persistLocked()
		}
	}
	return false, nil
}

// CountWhere returns the number of records satisfying pred.
func (s *Store[T, D]) CountWhere(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()

	n := 0
	for _, rec := range s.records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// Count returns the number of records in the collection.
func (s *Store[T, D]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.ensureLoadedLocked()
	return len(s.records)
}

// Degraded reports whether the store has fallen back to in-memory-only
// operation after a storage failure.
func (s *Store[T, D]) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// persistLocked writes the whole collection and its sequence counters back
// through the adapter. After the first failure the store stops trying for
// the rest of the session and mutations proceed in memory only.
func (s *Store[T, D]) persistLocked() error {
	if s.degraded {
		return nil
	}

	data, err := json.Marshal(s.records)
	if err != nil {
		// Domain records are plain structs; this cannot happen with the
		// shipped types. Treat it like a storage failure if it does.
		s.noteStorageFailureLocked("marshal", err)
		return err
	}
	if err := s.adapter.Write(storage.Key(s.desc.Slot), data); err != nil {
		s.noteStorageFailureLocked("persist", err)
		return err
	}

	seqData, err := json.Marshal(s.seq.counters)
	if err != nil {
		s.noteStorageFailureLocked("marshal seq", err)
		return err
	}
	if err := s.adapter.Write(storage.Key(s.desc.Slot)+".seq", seqData); err != nil {
		s.noteStorageFailureLocked("persist seq", err)
		return err
	}
	return nil
}

func (s *Store[T, D]) noteStorageFailureLocked(op string, err error) {
	if s.degraded {
		return
	}
	s.degraded = true
	s.log.Warn().Err(err).Str("op", op).
		Msg("storage unavailable; continuing in memory for this session")
}
