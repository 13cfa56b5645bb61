package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voting-agent/server/internal/agent/model"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisFactStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, rdb := setupRedis(t)
	store := NewRedisFactStore(rdb, "test", 0)

	_, ok, err := store.LookupFAQ(ctx, "What is a voting question?")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.AddFact(ctx, model.RelationFAQ, "What is a voting question?", "A yes/no prompt."))
	require.NoError(t, store.AddFact(ctx, model.RelationFAQ, "What is a voting question?", "Something else."))

	answer, ok, err := store.LookupFAQ(ctx, "What is a voting question?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "A yes/no prompt.", answer)

	all, err := store.Facts(ctx, model.RelationFAQ, "What is a voting question?")
	require.NoError(t, err)
	assert.Equal(t, []string{"A yes/no prompt.", "Something else."}, all)
}

func TestRedisFactStore_TTL(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupRedis(t)
	store := NewRedisFactStore(rdb, "test", time.Hour)

	require.NoError(t, store.AddFact(ctx, model.RelationFAQ, "Hi", "Hello"))
	assert.Equal(t, time.Hour, mr.TTL("test:faq:Hi"))

	mr.FastForward(2 * time.Hour)

	_, ok, err := store.LookupFAQ(ctx, "Hi")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisFactStore_SeedOutlivesTTL(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupRedis(t)
	store := NewRedisFactStore(rdb, "test", time.Hour)

	require.NoError(t, store.Seed(ctx, SeedFacts()))
	require.NoError(t, store.AddFact(ctx, model.RelationFAQ, "Can I vote twice?", "No."))
	assert.Zero(t, mr.TTL("test:faq:Hi"))
	assert.Zero(t, mr.TTL("test:seeded"))

	mr.FastForward(2 * time.Hour)

	answer, ok, err := store.LookupFAQ(ctx, "Hi")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, answer, "voting question generator")

	_, ok, err = store.LookupFAQ(ctx, "Can I vote twice?")
	require.NoError(t, err)
	assert.False(t, ok)

	// a restart after the TTL must not push the seed again
	require.NoError(t, NewRedisFactStore(rdb, "test", time.Hour).Seed(ctx, SeedFacts()))
	answers, err := store.Facts(ctx, model.RelationFAQ, "Hi")
	require.NoError(t, err)
	assert.Len(t, answers, 1)
}

func TestRedisFactStore_AppendKeepsKeyLifetime(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupRedis(t)
	store := NewRedisFactStore(rdb, "test", time.Hour)

	require.NoError(t, store.Seed(ctx, SeedFacts()))
	require.NoError(t, store.AddFact(ctx, model.RelationBrandHas, "brand", "positive_reviews"))
	assert.Zero(t, mr.TTL("test:brand_has:brand"))

	objects, err := store.Facts(ctx, model.RelationBrandHas, "brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"negative_reviews", "negative_reddit", "negative_social", "positive_reviews"}, objects)
}

func TestRedisFactStore_SeedOnce(t *testing.T) {
	ctx := context.Background()
	_, rdb := setupRedis(t)
	first := NewRedisFactStore(rdb, "shared", 0)
	second := NewRedisFactStore(rdb, "shared", 0)

	require.NoError(t, first.Seed(ctx, SeedFacts()))
	require.NoError(t, second.Seed(ctx, SeedFacts()))

	answers, err := first.Facts(ctx, model.RelationFAQ, "Hi")
	require.NoError(t, err)
	assert.Len(t, answers, 1)

	answer, ok, err := second.LookupFAQ(ctx, "How do I generate voting questions?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, answer, "create voting questions")
}

func TestRedisFactStore_ConnectionError(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupRedis(t)
	store := NewRedisFactStore(rdb, "", 0)
	mr.Close()

	_, ok, err := store.LookupFAQ(ctx, "Hi")
	assert.False(t, ok)
	assert.Error(t, err)
	assert.Error(t, store.AddFact(ctx, model.RelationFAQ, "Hi", "Hello"))
}
