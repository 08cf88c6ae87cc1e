package history

import "github.com/hassaan217/HeartGuard-AI/internal/prediction"

// Capacity is the number of results kept per session.
const Capacity = 5

// #region store
// Store keeps the most recent results, newest first. Results are copied on the
// way in and out. It is owned by a single workflow controller and is not safe
// for concurrent use on its own.
type Store struct {
	results []prediction.Result
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{results: make([]prediction.Result, 0, Capacity)}
}

// Record prepends r and drops the oldest entry once capacity is exceeded.
// Identical inputs are kept as separate entries.
func (s *Store) Record(r prediction.Result) {
	next := make([]prediction.Result, 0, Capacity)
	next = append(next, r.Clone())
	next = append(next, s.results...)
	if len(next) > Capacity {
		next = next[:Capacity]
	}
	s.results = next
}

// All returns a copy of the stored results, newest first.
func (s *Store) All() []prediction.Result {
	out := make([]prediction.Result, len(s.results))
	for i, r := range s.results {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	return len(s.results)
}

// Get looks up a stored result by id.
func (s *Store) Get(id string) (prediction.Result, bool) {
	for _, r := range s.results {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return prediction.Result{}, false
}

// #endregion store
