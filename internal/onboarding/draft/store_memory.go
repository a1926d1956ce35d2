package draft

import (
	"context"
	"sync"
)

// InMemoryStore is the process-local Store used in tests and when Redis is
// not configured. It stores the same encoded bytes as the Redis store so
// corruption handling is exercised identically.
type InMemoryStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{drafts: make(map[string][]byte)}
}

func (s *InMemoryStore) Load(_ context.Context, draftID string) (map[string]any, error) {
	s.mu.RLock()
	raw, ok := s.drafts[draftID]
	s.mu.RUnlock()
	if !ok {
		return map[string]any{}, nil
	}
	state, _ := decodeState(raw)
	return state, nil
}

func (s *InMemoryStore) Merge(_ context.Context, draftID string, partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := map[string]any{}
	if raw, ok := s.drafts[draftID]; ok {
		state, _ = decodeState(raw)
	}
	raw, err := encodeState(mergeState(state, partial))
	if err != nil {
		return err
	}
	s.drafts[draftID] = raw
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftID)
	return nil
}

// Corrupt replaces the stored bytes with an unparsable payload. Test helper.
func (s *InMemoryStore) Corrupt(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draftID] = []byte("{not json")
}
