package forms

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"onboard-gateway/internal/onboarding/schema"
)

// PostgresStore writes completed records into the onboarding_forms table as
// JSONB documents. created_at defaults to now() in the schema, keeping the
// timestamp server-assigned.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, record schema.Record) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO onboarding_forms (id, data) VALUES ($1, $2)`,
		id, payload,
	)
	if err != nil {
		return "", fmt.Errorf("insert onboarding form: %w", err)
	}
	return id.String(), nil
}
