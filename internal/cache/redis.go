package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// Redis is a report cache shared by every instance of the service.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, category, key string, dst any) (bool, error) {
	val, err := r.client.Get(ctx, Key(category, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get report from cache: %w", err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal report from cache: %w", err)
	}
	return true, nil
}

func (r *Redis) Generation(ctx context.Context, category string) (uint64, error) {
	return readGeneration(ctx, r.client, category)
}

// Set writes the entry only while the category generation still equals
// generation. The check and the write run under WATCH, so an Invalidate
// from any instance in between aborts the write.
func (r *Redis) Set(ctx context.Context, category, key string, generation uint64, value any) (bool, error) {
	val, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal report for cache: %w", err)
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, category)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			// zero expiration keeps the entry until it is invalidated
			pipe.Set(ctx, Key(category, key), val, 0)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, generationKey(category))
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to set report in cache: %w", err)
	}
	return stored, nil
}

func (r *Redis) Invalidate(ctx context.Context, category, key string) error {
	if err := r.client.Incr(ctx, generationKey(category)).Err(); err != nil {
		return fmt.Errorf("failed to bump report cache generation: %w", err)
	}
	if key != "" {
		if err := r.client.Del(ctx, Key(category, key)).Err(); err != nil {
			return fmt.Errorf("failed to invalidate report cache: %w", err)
		}
		return nil
	}
	if err := r.client.Del(ctx, Key(category, "")).Err(); err != nil {
		return fmt.Errorf("failed to invalidate report cache: %w", err)
	}
	return r.scan(ctx, Key(category, "")+":*", r.del)
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.scan(ctx, generationPrefix+"*", r.incr); err != nil {
		return err
	}
	return r.scan(ctx, keyPrefix+"*", r.del)
}

// getter is satisfied by both the client and a WATCH transaction.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, c getter, category string) (uint64, error) {
	gen, err := c.Get(ctx, generationKey(category)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report cache generation: %w", err)
	}
	return gen, nil
}

func (r *Redis) del(ctx context.Context, keys []string) error {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cached reports: %w", err)
	}
	return nil
}

func (r *Redis) incr(ctx context.Context, keys []string) error {
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, k)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to bump report cache generations: %w", err)
	}
	return nil
}

// scan hands the keys matching pattern to apply in batches.
func (r *Redis) scan(ctx context.Context, pattern string, apply func(context.Context, []string) error) error {
	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := apply(ctx, keys); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached reports: %w", err)
	}
	if len(keys) > 0 {
		return apply(ctx, keys)
	}
	return nil
}
