package remote

import (
	"encoding/binary"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"snaken/internal/sims/snake"
	"snaken/pkg/snaken"
)

// ErrTooManyEpisodes is returned when the store is at capacity.
var ErrTooManyEpisodes = errors.New("remote: episode limit reached")

// Episode is one independently controlled world. All access to the world
// goes through the episode lock.
type Episode struct {
	ID      uuid.UUID
	Created time.Time

	mu  sync.Mutex
	sim *snake.Sim
}

// newEpisode builds an episode from cfg. A zero seed is derived from the ID.
func newEpisode(cfg snaken.Config) (*Episode, error) {
	id := uuid.New()
	if cfg.Seed == 0 {
		cfg.Seed = seedFromID(id)
	}
	sim, err := snake.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Episode{ID: id, Created: time.Now(), sim: sim}, nil
}

func seedFromID(id uuid.UUID) int64 {
	seed := int64(binary.BigEndian.Uint64(id[:8]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Do runs fn with exclusive access to the episode's simulation.
func (e *Episode) Do(fn func(sim *snake.Sim) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sim)
}

// Store indexes live episodes by ID.
type Store struct {
	mu       sync.RWMutex
	episodes map[uuid.UUID]*Episode
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{episodes: make(map[uuid.UUID]*Episode)}
}

// Add inserts ep unless the store already holds limit episodes.
func (s *Store) Add(ep *Episode, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > 0 && len(s.episodes) >= limit {
		return ErrTooManyEpisodes
	}
	s.episodes[ep.ID] = ep
	return nil
}

// Get returns the episode with the given ID.
func (s *Store) Get(id uuid.UUID) (*Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ep, ok := s.episodes[id]
	return ep, ok
}

// Remove deletes the episode and reports whether it existed.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.episodes[id]; !ok {
		return false
	}
	delete(s.episodes, id)
	return true
}

// Len returns the number of live episodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.episodes)
}

// List returns the episodes ordered by creation time.
func (s *Store) List() []*Episode {
	s.mu.RLock()
	out := make([]*Episode, 0, len(s.episodes))
	for _, ep := range s.episodes {
		out = append(out, ep)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out
}
