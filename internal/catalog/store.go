package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknownField   = errors.New("unknown boolean field")
)

// Record is implemented by every product shape a Store can hold
type Record[T any] interface {
	RecordID() int
	WithID(id int) T
}

// BoolToggler is implemented by records with flippable boolean fields
type BoolToggler[T any] interface {
	ToggleField(name string) (T, bool)
}

// Cloner is implemented by records holding slices or maps, so copies handed
// in and out of a Store share no memory with it
type Cloner[T any] interface {
	Clone() T
}

// Store is an in-memory, ordered collection of records owned by a single
// view. Records enter and leave as copies; callers change the collection
// only through the store operations. Store does no locking; the owner serializes
// access.
type Store[T Record[T]] struct {
	policy  IDPolicy
	records []T
}

// NewStore creates a store using the given id policy, seeded with records
// whose ids are kept as supplied
func NewStore[T Record[T]](policy IDPolicy, seed ...T) *Store[T] {
	records := make([]T, len(seed))
	for i, rec := range seed {
		records[i] = cloneRecord(rec)
	}
	return &Store[T]{
		policy:  policy,
		records: records,
	}
}

// Policy returns the id assignment policy of the store
func (s *Store[T]) Policy() IDPolicy {
	return s.policy
}

// List returns a copy of the collection in insertion order
func (s *Store[T]) List() []T {
	out := make([]T, len(s.records))
	for i, rec := range s.records {
		out[i] = cloneRecord(rec)
	}
	return out
}

// Len returns the number of records held
func (s *Store[T]) Len() int {
	return len(s.records)
}

// Get looks up a record by id
func (s *Store[T]) Get(id int) (T, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return cloneRecord(s.records[idx]), true
}

// Insert assigns the next id per the store policy, appends the record and
// returns it. Any id carried by rec is ignored.
func (s *Store[T]) Insert(rec T) T {
	rec = cloneRecord(rec).WithID(s.policy.NextID(s.ids()))

	next := make([]T, 0, len(s.records)+1)
	next = append(next, s.records...)
	s.records = append(next, rec)

	return rec
}

// Update replaces the record whose id matches rec in place. When no record
// matches, the collection is left untouched and ErrRecordNotFound is returned.
func (s *Store[T]) Update(rec T) (T, error) {
	idx := s.indexOf(rec.RecordID())
	if idx < 0 {
		var zero T
		return zero, fmt.Errorf("update record %d: %w", rec.RecordID(), ErrRecordNotFound)
	}

	s.replaceAt(idx, cloneRecord(rec))
	return rec, nil
}

// Remove deletes the record with the given id. Removing an absent id is a no-op.
func (s *Store[T]) Remove(id int) {
	if s.indexOf(id) < 0 {
		return
	}

	next := make([]T, 0, len(s.records)-1)
	for _, rec := range s.records {
		if rec.RecordID() != id {
			next = append(next, rec)
		}
	}
	s.records = next
}

// Toggle flips the named boolean field of the record with the given id by
// replacing the whole record
func (s *Store[T]) Toggle(id int, field string) (T, error) {
	var zero T

	idx := s.indexOf(id)
	if idx < 0 {
		return zero, fmt.Errorf("toggle %s on record %d: %w", field, id, ErrRecordNotFound)
	}

	toggler, ok := any(s.records[idx]).(BoolToggler[T])
	if !ok {
		return zero, fmt.Errorf("toggle %s: %w", field, ErrUnknownField)
	}

	rec, ok := toggler.ToggleField(field)
	if !ok {
		return zero, fmt.Errorf("toggle %s: %w", field, ErrUnknownField)
	}

	s.replaceAt(idx, rec)
	return rec, nil
}

// cloneRecord deep-copies records that own reference fields
func cloneRecord[T any](rec T) T {
	if c, ok := any(rec).(Cloner[T]); ok {
		return c.Clone()
	}
	return rec
}

func (s *Store[T]) replaceAt(idx int, rec T) {
	next := slices.Clone(s.records)
	next[idx] = rec
	s.records = next
}

func (s *Store[T]) indexOf(id int) int {
	return slices.IndexFunc(s.records, func(rec T) bool {
		return rec.RecordID() == id
	})
}

func (s *Store[T]) ids() []int {
	ids := make([]int, len(s.records))
	for i, rec := range s.records {
		ids[i] = rec.RecordID()
	}
	return ids
}
