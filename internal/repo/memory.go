package repo

import (
	pkgerrors "github.com/chayanon-dev/lineadmin/pkg/errors"
)

// Keyed is implemented by records stored in a Store.
type Keyed interface {
	Key() string
}

// Store is an insertion-ordered, in-memory collection keyed by record ID.
// A store is owned by a single session and is not safe for concurrent use;
// the dashboard runs one logical user against one store at a time.
type Store[T Keyed] struct {
	order []string
	items map[string]T
}

// NewStore builds an empty store.
func NewStore[T Keyed]() *Store[T] {
	return &Store[T]{items: map[string]T{}}
}

// NewStoreOf builds a store seeded with the given records in order.
func NewStoreOf[T Keyed](records ...T) *Store[T] {
	s := NewStore[T]()
	for _, record := range records {
		s.Put(record)
	}
	return s
}

// Put inserts the record, or replaces it in place when the key exists.
// Replacement keeps the original insertion position.
func (s *Store[T]) Put(record T) {
	key := record.Key()
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = record
}

// Get returns the record for the key.
func (s *Store[T]) Get(key string) (T, error) {
	record, ok := s.items[key]
	if !ok {
		var zero T
		return zero, pkgerrors.New(pkgerrors.CodeNotFound, "record not found").WithDetails(map[string]string{"id": key})
	}
	return record, nil
}

// Has reports whether the key is present.
func (s *Store[T]) Has(key string) bool {
	_, ok := s.items[key]
	return ok
}

// Delete removes the record for the key; absent keys are a no-op.
func (s *Store[T]) Delete(key string) {
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	for i, candidate := range s.order {
		if candidate == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// All returns the records in insertion order. The slice is a fresh copy;
// the records themselves are shared.
func (s *Store[T]) All() []T {
	records := make([]T, 0, len(s.order))
	for _, key := range s.order {
		records = append(records, s.items[key])
	}
	return records
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	return len(s.order)
}
