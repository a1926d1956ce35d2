package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"onboard-gateway/internal/platform/redis"
)

const keyPrefix = "onboarding:draft:"

// RedisStore keeps drafts in Redis so they survive reloads and server
// restarts. Entries carry a TTL so abandoned drafts age out.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, logger *slog.Logger, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, logger: logger, ttl: ttl}
}

func (s *RedisStore) key(draftID string) string {
	return keyPrefix + draftID
}

func (s *RedisStore) Load(ctx context.Context, draftID string) (map[string]any, error) {
	raw, err := s.client.Get(ctx, s.key(draftID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	state, ok := decodeState(raw)
	if !ok {
		// Unparsable bytes are treated as an absent draft; the completeness
		// gate redirects the user as if nothing was filled in.
		s.logger.WarnContext(ctx, "discarding corrupted draft", "draft_id", draftID)
	}
	return state, nil
}

func (s *RedisStore) Merge(ctx context.Context, draftID string, partial map[string]any) error {
	state, err := s.Load(ctx, draftID)
	if err != nil {
		return err
	}
	raw, err := encodeState(mergeState(state, partial))
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key(draftID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, s.key(draftID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
