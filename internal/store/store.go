// Package store holds the in-memory collections backing the catalog. Each
// store keeps insertion order and assigns ids from a monotonic counter that
// never reuses a value, even after deletes.
package store

import (
	"time"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
)

// Store is an ordered in-memory collection for one entity type. It is not
// goroutine-safe; the owning catalog serializes access.
type Store[T domain.Entity] struct {
	records []T
	nextID  int
}

func New[T domain.Entity]() *Store[T] {
	return &Store[T]{nextID: 1}
}

// List returns a copy of the records in insertion order. Mutating the
// returned slice does not affect the store.
func (s *Store[T]) List() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int { return len(s.records) }

// NextID returns a fresh id and advances the counter.
func (s *Store[T]) NextID() int {
	id := s.nextID
	s.nextID++
	return id
}

// IndexOf returns the position of the record with the given id, or -1.
func (s *Store[T]) IndexOf(id int) int {
	for i, r := range s.records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	if i := s.IndexOf(id); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// At returns the record at position i.
func (s *Store[T]) At(i int) T { return s.records[i] }

// Append adds a record at the end, stamping createdAt if the record supports
// timestamps and carries none. Records seeded with explicit ids keep the
// counter consistent: the next assigned id is always above every stored one.
func (s *Store[T]) Append(record *T) {
	if ts, ok := any(record).(domain.Timestamped); ok && ts.GetCreatedAt().IsZero() {
		ts.SetCreatedAt(time.Now())
	}
	s.records = append(s.records, *record)
	if id := (*record).GetID(); id >= s.nextID {
		s.nextID = id + 1
	}
}

// ReplaceAt swaps the record at position i.
func (s *Store[T]) ReplaceAt(i int, record T) {
	s.records[i] = record
}

// RemoveAt deletes and returns the record at position i. The id counter is
// untouched, so removed ids are never reassigned.
func (s *Store[T]) RemoveAt(i int) T {
	record := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return record
}

// Clear drops every record and returns how many were removed. The id counter
// keeps its position.
func (s *Store[T]) Clear() int {
	n := len(s.records)
	s.records = nil
	return n
}
