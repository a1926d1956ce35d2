// Package draft persists the partial onboarding record while a user moves
// between wizard steps. The draft is the only durable copy of in-progress
// answers; merges are shallow and last-write-wins since each draft has a
// single writer.
package draft

import (
	"context"
	"encoding/json"
)

// Store is the persistence boundary for drafts. Load returns an empty state
// for unknown draft IDs and for corrupted payloads; storage trouble beyond
// that surfaces as an error.
type Store interface {
	// Load returns the current draft state. Never nil on success.
	Load(ctx context.Context, draftID string) (map[string]any, error)
	// Merge shallow-merges partial into the stored state: present keys
	// overwrite, absent keys are untouched.
	Merge(ctx context.Context, draftID string, partial map[string]any) error
	// Clear removes the draft. Clearing an absent draft is a no-op.
	Clear(ctx context.Context, draftID string) error
}

// envelope is the persisted byte shape. Only state is read or written;
// version is reserved.
type envelope struct {
	State   map[string]any `json:"state"`
	Version int            `json:"version"`
}

// decodeState parses persisted draft bytes. Corrupted payloads are reported
// so callers can log them, but the returned state is always usable: the
// wizard's completeness gate handles the resulting empty draft.
func decodeState(raw []byte) (map[string]any, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return map[string]any{}, false
	}
	if env.State == nil {
		env.State = map[string]any{}
	}
	return env.State, true
}

func encodeState(state map[string]any) ([]byte, error) {
	return json.Marshal(envelope{State: state, Version: 0})
}

// mergeState applies a shallow field-by-field overwrite of partial onto
// existing and returns existing.
func mergeState(existing, partial map[string]any) map[string]any {
	for k, v := range partial {
		existing[k] = v
	}
	return existing
}
