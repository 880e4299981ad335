package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, c.Delete(ctx, "k", "also-missing"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	_, err := c.Get(ctx, "k")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_CopiesValues(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	src := []byte("original")
	require.NoError(t, c.Set(ctx, "k", src, 0))
	src[0] = 'X'

	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), val)

	val[0] = 'Y'
	again, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestNoopCache_AlwaysMisses(t *testing.T) {
	c := NoopCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
	assert.False(t, c.IsAvailable(ctx))
}

func TestJSONHelpers(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Score float64 `json:"score"`
	}

	SetJSON(ctx, c, "p", payload{Score: 61.5}, 0)

	var out payload
	require.True(t, GetJSON(ctx, c, "p", &out))
	assert.Equal(t, 61.5, out.Score)

	assert.False(t, GetJSON(ctx, c, "absent", &out))
}

func TestKeys(t *testing.T) {
	day := time.Date(2026, 7, 4, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "tasks:all", KeyTaskList())
	assert.Equal(t, "task:abc", KeyTask("abc"))
	assert.Equal(t, "mood:today", KeyMoodToday())
	assert.Equal(t, "productivity:2026-07-04", KeyProductivity(day))
	assert.Equal(t, "productivity:trend:30", KeyTrend(30))
	assert.Equal(t, "productivity:correlation:14", KeyCorrelation(14))
	assert.Equal(t, "plan:2026-07-04:morning", KeyPlan(day, "morning"))
	assert.Equal(t, "conversation:context:10", KeyConversationContext(10))
}
