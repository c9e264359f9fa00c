package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository using Redis as the backing store.
// Sessions are stored as JSON under key "session:<token>" with TTL =
// expiresAt - now, so Redis evicts expired entries on its own. Useful when the
// admin panel runs behind more than one instance.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-based session repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(token string) string {
	return r.prefix + token
}

func (r *RedisRepository) Create(ctx context.Context, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	// padded by a second so the service rules on the expiry instant itself,
	// not Redis eviction
	exp := time.Until(s.ExpiresAt) + time.Second
	if exp <= 0 {
		exp = time.Second
	}
	return r.client.Set(ctx, r.key(s.Token), b, exp).Err()
}

func (r *RedisRepository) Get(ctx context.Context, token string) (*Session, error) {
	b, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
