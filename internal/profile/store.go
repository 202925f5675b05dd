package profile

import (
	"sync"
	"time"

	"aethernet/internal/models"
)

// Store holds per-conversation profiles keyed by user identity. Operations on
// the same key are serialized; different keys never contend beyond the map
// lock. Profiles live for the lifetime of the process.
type Store struct {
	mu       sync.Mutex
	profiles map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	profile models.Profile
}

func NewStore() *Store {
	return &Store{profiles: make(map[string]*entry)}
}

func (s *Store) Get(userID string) models.Profile {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile
}

func (s *Store) Put(userID string, p models.Profile) {
	s.Update(userID, func(cur *models.Profile) { *cur = p })
}

// Update applies fn under the key's lock, so a read-modify-write from one
// turn cannot interleave with another turn of the same user.
func (s *Store) Update(userID string, fn func(*models.Profile)) models.Profile {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.profile)
	e.profile.UpdatedAt = time.Now()
	return e.profile
}

func (s *Store) entry(userID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.profiles[userID]
	if !ok {
		e = &entry{}
		s.profiles[userID] = e
	}
	return e
}
