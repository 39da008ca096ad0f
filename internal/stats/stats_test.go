package stats

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expert-chat/internal/persona"
)

func newCounter(t *testing.T) (*Counter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb), mr
}

func TestCounter_IncrAndCounts(t *testing.T) {
	c, _ := newCounter(t)
	ctx := context.Background()

	require.NoError(t, c.Incr(ctx, persona.HealthAdvisor))
	require.NoError(t, c.Incr(ctx, persona.HealthAdvisor))
	require.NoError(t, c.Incr(ctx, persona.Persona("wizard")))

	counts, err := c.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[persona.HealthAdvisor.String()])
	assert.Equal(t, int64(0), counts[persona.CareerConsultant.String()])
	assert.Equal(t, int64(1), counts["other"])
	_, stored := counts["wizard"]
	assert.False(t, stored)
}

func TestCounter_Disabled(t *testing.T) {
	c := New(nil)
	assert.False(t, c.Enabled())
	assert.ErrorIs(t, c.Incr(context.Background(), persona.HealthAdvisor), ErrDisabled)
	_, err := c.Counts(context.Background())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestCounter_RedisDown(t *testing.T) {
	c, mr := newCounter(t)
	mr.Close()

	assert.Error(t, c.Incr(context.Background(), persona.CareerConsultant))
}
