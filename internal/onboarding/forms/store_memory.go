package forms

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"onboard-gateway/internal/onboarding/schema"
)

// StoredForm is a created record as held by the in-memory store.
type StoredForm struct {
	ID        string
	Record    schema.Record
	CreatedAt time.Time
}

// InMemoryStore is the Store used in tests and when Postgres is not
// configured.
type InMemoryStore struct {
	mu    sync.RWMutex
	forms []StoredForm

	// FailWith, when set, makes Create return that error without storing.
	// Test hook for store-unavailable paths.
	FailWith error
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, record schema.Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return "", s.FailWith
	}
	form := StoredForm{
		ID:        uuid.NewString(),
		Record:    record,
		CreatedAt: time.Now(),
	}
	s.forms = append(s.forms, form)
	return form.ID, nil
}

// Forms returns a copy of all stored forms.
func (s *InMemoryStore) Forms() []StoredForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]StoredForm{}, s.forms...)
}
