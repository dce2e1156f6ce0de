package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds in-progress order drafts keyed by a session identifier. Drafts
// are the only state that outlives a single request; everything else in the
// application is re-fetched from the API per view.
type Store struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*Draft
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a draft store. Drafts untouched for longer than ttl are
// dropped lazily on the next access.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		drafts: make(map[uuid.UUID]*Draft),
		ttl:    ttl,
		now:    time.Now,
	}
}

// New creates and registers a fresh draft.
func (s *Store) New() *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	d := newDraft(uuid.New())
	d.touchedAt = s.now().Unix()
	s.drafts[d.id] = d
	return d
}

// Get returns the draft for id, refreshing its expiry. The second return is
// false when the draft never existed or has expired.
func (s *Store) Get(id uuid.UUID) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	d, ok := s.drafts[id]
	if !ok {
		return nil, false
	}
	d.touchedAt = s.now().Unix()
	return d, true
}

// Remove discards a draft, typically after a successful submit.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// Len returns the number of live drafts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *Store) pruneLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl).Unix()
	for id, d := range s.drafts {
		if d.touchedAt < cutoff {
			delete(s.drafts, id)
		}
	}
}
