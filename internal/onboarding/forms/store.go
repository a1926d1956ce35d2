// Package forms is the document store for completed onboarding records.
// Records are append-only: there is no edit path after submission.
package forms

import (
	"context"

	"onboard-gateway/internal/onboarding/schema"
)

// Store persists completed onboarding records. Create assigns the creation
// timestamp server-side and returns the new record's identifier.
type Store interface {
	Create(ctx context.Context, record schema.Record) (string, error)
}
