package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"launchpool/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS farm_snapshots (
	chain_id      BIGINT      NOT NULL,
	pid           BIGINT      NOT NULL,
	symbol        TEXT        NOT NULL,
	snapshot_ts   BIGINT      NOT NULL,
	lp_address    TEXT        NOT NULL,
	staked_lp     NUMERIC     NOT NULL,
	pool_weight   NUMERIC     NOT NULL,
	token_amount  NUMERIC     NOT NULL,
	token2_amount NUMERIC     NOT NULL,
	usd_value     NUMERIC     NOT NULL,
	price         NUMERIC     NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (chain_id, pid, symbol, snapshot_ts)
);
`

// Store provides Postgres persistence for the KV cache and farm snapshots.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables used by the store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	row := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key=$1`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}

// PutSnapshotBatch inserts or updates farm snapshots. Rows sharing a key are
// written once.
func (s *Store) PutSnapshotBatch(ctx context.Context, snapshots []model.FarmSnapshot) error {
	snapshots = model.UniqueSnapshots(snapshots)
	if len(snapshots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		batch.Queue(`
			INSERT INTO farm_snapshots (
				chain_id, pid, symbol, snapshot_ts, lp_address, staked_lp, pool_weight,
				token_amount, token2_amount, usd_value, price, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
			ON CONFLICT (chain_id, pid, symbol, snapshot_ts)
			DO UPDATE SET
				lp_address = EXCLUDED.lp_address,
				staked_lp = EXCLUDED.staked_lp,
				pool_weight = EXCLUDED.pool_weight,
				token_amount = EXCLUDED.token_amount,
				token2_amount = EXCLUDED.token2_amount,
				usd_value = EXCLUDED.usd_value,
				price = EXCLUDED.price,
				updated_at = now()
		`,
			int64(snap.ChainID),
			int64(snap.PID),
			snap.Symbol,
			int64(snap.Timestamp),
			snap.LPAddress,
			snap.StakedLP,
			snap.PoolWeight,
			snap.TokenAmount,
			snap.Token2Amount,
			snap.USDValue,
			snap.Price,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
