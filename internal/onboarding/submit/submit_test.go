package submit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboard-gateway/internal/onboarding/forms"
	"onboard-gateway/internal/onboarding/schema"
	dErrors "onboard-gateway/pkg/domainerrors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completeState() map[string]any {
	return map[string]any{
		"firstName": "Jan", "surname": "Kowalski", "title": "mr",
		"email": "jan.kowalski@example.com", "phone": "07700900456",
		"birthDate": "1985-11-02", "gender": "male", "nino": "CE123456A",
		"birthPlace": "poland", "addressLine1": "7 Mill Lane",
		"postTown": "Leeds", "postcode": "LS1 4AB", "country": "United Kingdom",
		"maritalStatus": "single", "nationality": "polish",
		"enteredUK": "2015-03-20", "immigrationStatus": "settled",
		"tenancyType": "private-rented",
		"currentSituation": "Renting a one bedroom flat, working full time",
		"termsAndConditions": true,
	}
}

// countingStore records how many Create calls were made.
type countingStore struct {
	calls atomic.Int64
	err   error
}

func (s *countingStore) Create(context.Context, schema.Record) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "form-1", nil
}

func TestSubmitSuccess(t *testing.T) {
	store := forms.NewInMemoryStore()
	coord := NewCoordinator(store, discardLogger(), nil)

	id, err := coord.Submit(context.Background(), completeState())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	stored := store.Forms()
	require.Len(t, stored, 1)
	assert.Equal(t, id, stored[0].ID)
	assert.Equal(t, "Jan", stored[0].Record.FirstName)
	assert.False(t, stored[0].CreatedAt.IsZero())
}

func TestSubmitValidationFailureSkipsStore(t *testing.T) {
	store := &countingStore{}
	coord := NewCoordinator(store, discardLogger(), nil)

	state := completeState()
	state["nino"] = "BG123456C"
	delete(state, "email")

	_, err := coord.Submit(context.Background(), state)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))

	fields := dErrors.FieldsOf(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "nino", fields[1].Field)

	assert.Equal(t, int64(0), store.calls.Load(), "validation failure must not contact the store")
}

func TestSubmitStoreFailureMapsToStoreUnavailable(t *testing.T) {
	store := &countingStore{err: errors.New("connection refused")}
	coord := NewCoordinator(store, discardLogger(), nil)

	_, err := coord.Submit(context.Background(), completeState())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeStoreUnavailable))
	assert.Equal(t, int64(1), store.calls.Load(), "exactly one store write per invocation")
}

func TestSubmitMakesExactlyOneWrite(t *testing.T) {
	store := &countingStore{}
	coord := NewCoordinator(store, discardLogger(), nil)

	_, err := coord.Submit(context.Background(), completeState())
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.calls.Load())
}
