package repository

import (
	"chainquest_backend/internal/model"
	"sync"
	"time"
)

// ProgressStore is the only stateful boundary in the engine. Update runs its
// mutation under per-user mutual exclusion, so the read-modify-write sequences
// in the progression rules are atomic with respect to concurrent requests for
// the same user. Operations on different users never contend.
type ProgressStore interface {
	// Get returns a snapshot of the user's progress, creating the record
	// lazily on first reference.
	Get(userID string) *model.UserProgress
	// Update applies fn to the user's live record under that user's lock.
	// A non-nil error from fn is returned unchanged; fn must mutate nothing
	// on the paths where it fails.
	Update(userID string, fn func(*model.UserProgress) error) error
}

// MemoryProgressStore keeps all progress in process memory. State does not
// survive a restart; durability is the job of an alternative ProgressStore
// implementation, not of the engine.
type MemoryProgressStore struct {
	mu    sync.RWMutex
	users map[string]*userEntry
}

type userEntry struct {
	mu       sync.Mutex
	progress *model.UserProgress
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{users: make(map[string]*userEntry)}
}

func (s *MemoryProgressStore) entry(userID string) *userEntry {
	s.mu.RLock()
	e, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.users[userID]; ok {
		return e
	}
	e = &userEntry{progress: model.NewUserProgress(userID)}
	s.users[userID] = e
	return e
}

func (s *MemoryProgressStore) Get(userID string) *model.UserProgress {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.Clone()
}

func (s *MemoryProgressStore) Update(userID string, fn func(*model.UserProgress) error) error {
	e := s.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.progress); err != nil {
		return err
	}
	e.progress.LastActive = time.Now()
	return nil
}
