package cheater

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "apply/pkg/domain"
)

// cheatersKey is the Redis set holding flagged applicant ids.
const cheatersKey = "apply:cheaters"

// Redis shares the cheater list across instances.
type Redis struct {
	client *redis.Client
	key    string
}

type RedisOption func(*Redis)

// WithKey overrides the Redis set name, mainly for test isolation.
func WithKey(key string) RedisOption {
	return func(r *Redis) {
		r.key = key
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, key: cheatersKey}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Redis) Add(ctx context.Context, applicantID id.ApplicantID) error {
	if err := r.client.SAdd(ctx, r.key, applicantID.String()).Err(); err != nil {
		return fmt.Errorf("add cheater: %w", err)
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, applicantID id.ApplicantID) error {
	if err := r.client.SRem(ctx, r.key, applicantID.String()).Err(); err != nil {
		return fmt.Errorf("remove cheater: %w", err)
	}
	return nil
}

func (r *Redis) IsCheater(ctx context.Context, applicantID id.ApplicantID) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, applicantID.String()).Result()
	if err != nil {
		return false, fmt.Errorf("check cheater: %w", err)
	}
	return ok, nil
}
