package store

import (
	"sync"

	"github.com/medicore/portal/internal/state"
)

// Subscriber observes each applied burst. It runs after the burst commits,
// outside the store lock, and must not assume it still sees the latest
// snapshot by the time it runs.
type Subscriber func(old, new state.Snapshot)

// Store owns the snapshot. Every mutation goes through Commit or Dispatch,
// which hold an exclusive section around the whole burst so multi-action
// orchestrations are atomic from every observer's point of view.
type Store struct {
	mu   sync.Mutex
	snap state.Snapshot

	subMu sync.Mutex
	subs  []Subscriber
}

func New(initial state.Snapshot) *Store {
	return &Store{snap: initial}
}

// View returns the current snapshot.
func (s *Store) View() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch applies the actions serially as one burst.
func (s *Store) Dispatch(actions ...state.Action) {
	_ = s.Commit(func(state.Snapshot) ([]state.Action, error) {
		return actions, nil
	})
}

// Commit calls build with the current snapshot and applies the returned
// actions while still holding the lock, so validation and mutation cannot
// be interleaved with another burst. An error from build leaves the
// snapshot unchanged.
func (s *Store) Commit(build func(state.Snapshot) ([]state.Action, error)) error {
	s.mu.Lock()
	old := s.snap
	actions, err := build(old)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next := old
	for _, a := range actions {
		next = state.Reduce(next, a)
	}
	s.snap = next
	s.mu.Unlock()

	if len(actions) > 0 {
		s.notify(old, next)
	}
	return nil
}

func (s *Store) notify(old, next state.Snapshot) {
	s.subMu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(old, next)
	}
}
