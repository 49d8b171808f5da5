// Package redis stores items as JSON values in a Redis hash keyed by id, with
// ids drawn from an INCR counter.
package redis

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"itemdeck/internal/domain/item"

	"github.com/cenkalti/backoff/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisClient interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
	HSet(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
	HGetAll(ctx context.Context, key string) *goredis.MapStringStringCmd
	HExists(ctx context.Context, key, field string) *goredis.BoolCmd
	HDel(ctx context.Context, key string, fields ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

// Config configures the Redis item repository.
type Config struct {
	Addr             string
	Prefix           string
	OperationTimeout time.Duration
	ConnectTimeout   time.Duration
}

type itemRepository struct {
	client    redisClient
	opTimeout time.Duration
	prefix    string
}

// Open connects to Redis, retrying the ping with exponential backoff for up
// to cfg.ConnectTimeout.
func Open(ctx context.Context, cfg Config) (*itemRepository, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("redis addr is required")
	}
	client := goredis.NewClient(&goredis.Options{Addr: cfg.Addr})

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = cfg.ConnectTimeout
	err := backoff.RetryNotify(func() error {
		return client.Ping(ctx).Err()
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		log.Warn().Err(err).Dur("retry_in", next).Msg("redis ping failed")
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newItemRepository(client, cfg), nil
}

func newItemRepository(client redisClient, cfg Config) *itemRepository {
	timeout := cfg.OperationTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "items"
	}
	return &itemRepository{client: client, opTimeout: timeout, prefix: prefix}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	innerCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	raw, err := r.client.HGetAll(innerCtx, r.recordsKey()).Result()
	if err != nil {
		return nil, err
	}
	items := make([]*item.Item, 0, len(raw))
	for field, value := range raw {
		it, err := decode(value)
		if err != nil {
			return nil, fmt.Errorf("decode item %s: %w", field, err)
		}
		items = append(items, it)
	}
	slices.SortFunc(items, func(a, b *item.Item) int { return cmp.Compare(a.ID, b.ID) })
	return items, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	innerCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	raw, err := r.client.HGet(innerCtx, r.recordsKey(), field(id)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, item.ErrNotFound
		}
		return nil, err
	}
	return decode(raw)
}

// Save checks existence before an update; a concurrent delete between the
// check and the write resurrects the item.
func (r *itemRepository) Save(ctx context.Context, it *item.Item) error {
	innerCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if it.ID == 0 {
		id, err := r.client.Incr(innerCtx, r.seqKey()).Result()
		if err != nil {
			return fmt.Errorf("next item id: %w", err)
		}
		it.ID = id
	} else {
		ok, err := r.client.HExists(innerCtx, r.recordsKey(), field(it.ID)).Result()
		if err != nil {
			return err
		}
		if !ok {
			return item.ErrNotFound
		}
	}

	raw, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	return r.client.HSet(innerCtx, r.recordsKey(), field(it.ID), string(raw)).Err()
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	innerCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	n, err := r.client.HDel(innerCtx, r.recordsKey(), field(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *itemRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *itemRepository) recordsKey() string { return r.prefix + ":records" }
func (r *itemRepository) seqKey() string     { return r.prefix + ":seq" }

func field(id int64) string { return strconv.FormatInt(id, 10) }

func decode(raw string) (*item.Item, error) {
	var it item.Item
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil, err
	}
	return &it, nil
}
