// Package state holds the process-wide search state shared by the input
// controller, the coordinator and the presentation shells.
package state

import (
	"slices"
	"sync"
)

// Store is the shared state container.
//
// Query is written by the input controller; the request state and the
// disease record are written by the coordinator. Everyone else reads.
type Store struct {
	mu     sync.RWMutex
	query  string
	result RequestState
	record []ResultItem
	subs   []*Subscription
}

// NewStore creates an idle store.
func NewStore() *Store {
	return &Store{result: Idle()}
}

// Query returns the current search text.
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SetQuery replaces the search text.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q == s.query {
		return
	}
	s.query = q
	for _, sub := range s.subs {
		sub.sendQuery(q)
	}
}

// ResultState returns the current request state.
func (s *Store) ResultState() RequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// SetResultState replaces the request state.
func (s *Store) SetResultState(r RequestState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = r
	for _, sub := range s.subs {
		sub.sendResult(r)
	}
}

// DiseaseRecord returns the items of the last successful search.
func (s *Store) DiseaseRecord() []ResultItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.record)
}

// SetDiseaseRecord publishes the items of a successful search for
// page-level consumers.
func (s *Store) SetDiseaseRecord(items []ResultItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = slices.Clone(items)
	for _, sub := range s.subs {
		sub.sendRecord(slices.Clone(items))
	}
}

// Subscribe registers a subscriber. The returned function unsubscribes and
// closes the subscription's Done channel.
func (s *Store) Subscribe() (*Subscription, func()) {
	sub := newSubscription()

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	var once sync.Once
	return sub, func() {
		once.Do(func() {
			s.mu.Lock()
			s.subs = slices.DeleteFunc(s.subs, func(x *Subscription) bool { return x == sub })
			s.mu.Unlock()
			sub.close()
		})
	}
}
