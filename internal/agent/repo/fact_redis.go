package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/voting-agent/server/internal/agent/model"
	errx "github.com/voting-agent/server/internal/core/error"
	logx "github.com/voting-agent/server/pkg/logger"
)

// RedisFactStore shares the fact space between replicas. Each
// relation/subject pair is a Redis list, so RPUSH keeps insertion order and
// LINDEX 0 is the first match.
type RedisFactStore struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewRedisFactStore(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisFactStore {
	if prefix == "" {
		prefix = "facts"
	}
	return &RedisFactStore{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (r *RedisFactStore) factKey(relation, subject string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, relation, subject)
}

func (r *RedisFactStore) seededKey() string {
	return r.prefix + ":seeded"
}

func (r *RedisFactStore) LookupFAQ(ctx context.Context, question string) (string, bool, error) {
	key := r.factKey(model.RelationFAQ, question)

	answer, err := r.rdb.LIndex(ctx, key, 0).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to look up faq in redis")
		return "", false, errx.WrapRedis(err)
	}
	return answer, true, nil
}

// AddFact appends a learned fact. A key created here expires after the
// store TTL; appending to an existing key keeps its lifetime, so seeded keys
// stay permanent.
func (r *RedisFactStore) AddFact(ctx context.Context, relation, subject, object string) error {
	return r.push(ctx, relation, subject, object, r.ttl)
}

func (r *RedisFactStore) push(ctx context.Context, relation, subject, object string, ttl time.Duration) error {
	key := r.factKey(relation, subject)

	n, err := r.rdb.RPush(ctx, key, object).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push fact to redis")
		return errx.WrapRedis(err)
	}
	if ttl <= 0 || n > 1 {
		return nil
	}
	if ok, err := r.rdb.Expire(ctx, key, ttl).Result(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
		return errx.WrapRedis(err)
	} else if !ok {
		logx.Warn().Str("key", key).Dur("ttl", ttl).Msg("failed to set TTL on fact key")
	}
	return nil
}

func (r *RedisFactStore) Facts(ctx context.Context, relation, subject string) ([]string, error) {
	key := r.factKey(relation, subject)

	objects, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load facts from redis")
		return nil, errx.WrapRedis(err)
	}
	return objects, nil
}

// Seed loads facts once. The first replica to claim the seed marker writes
// them; the others skip. Seeded facts and the marker never expire.
func (r *RedisFactStore) Seed(ctx context.Context, facts []model.Fact) error {
	claimed, err := r.rdb.SetNX(ctx, r.seededKey(), time.Now().UTC().Format(time.RFC3339), 0).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", r.seededKey()).Msg("failed to claim seed marker")
		return errx.WrapRedis(err)
	}
	if !claimed {
		logx.Debug().Str("key", r.seededKey()).Msg("fact store already seeded")
		return nil
	}

	for _, f := range facts {
		if err := r.push(ctx, f.Relation, f.Subject, f.Object, 0); err != nil {
			return err
		}
	}
	logx.Info().Int("facts", len(facts)).Msg("fact store seeded")
	return nil
}

var _ model.FactStore = (*RedisFactStore)(nil)
