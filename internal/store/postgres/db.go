package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL DEFAULT '',
	title       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Open connects to dsn, retrying the ping with exponential backoff for up to
// connectTimeout, and makes sure the items table exists.
func Open(ctx context.Context, dsn string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = connectTimeout
	err = backoff.RetryNotify(func() error {
		return pool.Ping(ctx)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		log.Warn().Err(err).Dur("retry_in", next).Msg("db ping failed")
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}
	return pool, nil
}

func MustOpen(ctx context.Context, dsn string, connectTimeout time.Duration) *pgxpool.Pool {
	pool, err := Open(ctx, dsn, connectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("db open fail")
	}
	return pool
}
