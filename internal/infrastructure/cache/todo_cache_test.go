package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-auth-service/internal/domain/entities"
)

// fakeRedis is a map-backed stand-in for the redis client.
type fakeRedis struct {
	store map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string][]byte{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	b, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(b), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.store[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.store[key]; ok {
			delete(f.store, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestGetListMissReturnsNil(t *testing.T) {
	c := NewTodoCache(newFakeRedis(), time.Minute)

	list, err := c.GetList(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestSetAndGetListRoundTrip(t *testing.T) {
	c := NewTodoCache(newFakeRedis(), time.Minute)
	ctx := context.Background()
	owner := uuid.New()

	todo := entities.NewTodo(owner, "cached task", nil)
	require.NoError(t, c.SetList(ctx, owner, []*entities.Todo{todo}))

	list, err := c.GetList(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, todo.Id, list[0].Id)
	assert.Equal(t, "cached task", list[0].Title)
}

func TestListsAreKeyedPerUser(t *testing.T) {
	c := NewTodoCache(newFakeRedis(), time.Minute)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, c.SetList(ctx, alice, []*entities.Todo{entities.NewTodo(alice, "alice task", nil)}))

	list, err := c.GetList(ctx, bob)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestInvalidateDropsList(t *testing.T) {
	c := NewTodoCache(newFakeRedis(), time.Minute)
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, c.SetList(ctx, owner, []*entities.Todo{entities.NewTodo(owner, "task", nil)}))
	require.NoError(t, c.Invalidate(ctx, owner))

	list, err := c.GetList(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *TodoCache
	ctx := context.Background()
	owner := uuid.New()

	list, err := c.GetList(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, list)
	require.NoError(t, c.SetList(ctx, owner, nil))
	require.NoError(t, c.Invalidate(ctx, owner))
}
