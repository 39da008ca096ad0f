// Package stats keeps per-persona submission counts in redis. Only counts are
// stored, never questions or answers.
package stats

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"expert-chat/internal/persona"
)

const countsKey = "expert-chat:asks"

// ErrDisabled is returned when no redis client is configured.
var ErrDisabled = errors.New("stats disabled")

type Counter struct {
	rdb *redis.Client
}

// New accepts a nil client; the counter is then disabled.
func New(rdb *redis.Client) *Counter {
	return &Counter{rdb: rdb}
}

func (c *Counter) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Incr counts one submission for p. Values outside the persona set share the
// "other" field.
func (c *Counter) Incr(ctx context.Context, p persona.Persona) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	field := p.String()
	if !p.Known() {
		field = "other"
	}
	return c.rdb.HIncrBy(ctx, countsKey, field, 1).Err()
}

// Counts returns every known persona (zero when never asked) plus "other"
// when present.
func (c *Counter) Counts(ctx context.Context) (map[string]int64, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	raw, err := c.rdb.HGetAll(ctx, countsKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw)+len(persona.All()))
	for _, p := range persona.All() {
		out[p.String()] = 0
	}
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[k] = n
	}
	return out, nil
}
