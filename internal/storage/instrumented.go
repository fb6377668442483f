package storage

import "sync/atomic"

// Instrumented wraps a Store and counts operations. The counters back the
// STATS command.
type Instrumented struct {
	store Store

	gets atomic.Uint64
	sets atomic.Uint64
	dels atomic.Uint64
}

var _ Store = (*Instrumented)(nil)

func NewInstrumented(store Store) *Instrumented {
	return &Instrumented{store: store}
}

func (s *Instrumented) Set(key, value string) error {
	s.sets.Add(1)
	return s.store.Set(key, value)
}

func (s *Instrumented) Get(key string) (string, bool) {
	s.gets.Add(1)
	return s.store.Get(key)
}

func (s *Instrumented) Delete(key string) error {
	s.dels.Add(1)
	return s.store.Delete(key)
}

func (s *Instrumented) Keys() []string {
	return s.store.Keys()
}

func (s *Instrumented) Len() int {
	return s.store.Len()
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Gets uint64
	Sets uint64
	Dels uint64
}

func (s *Instrumented) Snapshot() Snapshot {
	return Snapshot{
		Gets: s.gets.Load(),
		Sets: s.sets.Load(),
		Dels: s.dels.Load(),
	}
}
