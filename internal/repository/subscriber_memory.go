package repository

import (
	"context"
	"sync"
)

var _ SubscriberStore = (*MemorySubscriberStore)(nil)

// MemorySubscriberStore keeps subscribers in process memory. Contents are
// lost on restart, which matches the store's role as the zero-setup default.
type MemorySubscriberStore struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

func NewMemorySubscriberStore() *MemorySubscriberStore {
	return &MemorySubscriberStore{
		emails: make(map[string]struct{}),
	}
}

func (s *MemorySubscriberStore) Add(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emails[email]; ok {
		return false, nil
	}
	s.emails[email] = struct{}{}
	return true, nil
}

func (s *MemorySubscriberStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.emails), nil
}
