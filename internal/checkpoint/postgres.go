package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

type (
	// Metrics records metrics for checkpoint store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// PostgresStore keeps checkpoints in a `checkpoints` table, one row per
// (chain, protocol, primary, secondary) tuple. The upsert never lowers
// last_reconciled_height, so a stale writer cannot roll progress back.
type PostgresStore struct {
	pool    *pgxpool.Pool
	metrics Metrics
}

// NewPostgresStore opens a pgx pool for the given DSN and verifies connectivity.
// The schema is managed by cmd/migrations/postgres.
func NewPostgresStore(ctx context.Context, dsn string, metrics Metrics) (*PostgresStore, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{pool: pool, metrics: metrics}, nil
}

// Load implements Store.
func (s *PostgresStore) Load(ctx context.Context, key model.CheckpointKey) (cp *model.Checkpoint, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("load", err, started)
	}()

	const query = `
SELECT last_reconciled_height, updated_at
FROM checkpoints
WHERE chain = $1 AND protocol = $2 AND primary_endpoint = $3 AND secondary_endpoint = $4`

	var height int64
	var updatedAt time.Time
	err = s.pool.QueryRow(ctx, query,
		string(key.Chain), string(key.Protocol), key.PrimaryEndpoint, key.SecondaryEndpoint,
	).Scan(&height, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query checkpoint: %w", err)
	}

	return &model.Checkpoint{
		Key:                  key,
		LastReconciledHeight: uint64(height),
		UpdatedAt:            updatedAt,
	}, nil
}

// Save implements Store. The WHERE guard on the upsert enforces monotonic
// heights at the database, not just in process.
func (s *PostgresStore) Save(ctx context.Context, cp model.Checkpoint) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("save", err, started)
	}()

	const query = `
INSERT INTO checkpoints (chain, protocol, primary_endpoint, secondary_endpoint, last_reconciled_height, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (chain, protocol, primary_endpoint, secondary_endpoint)
DO UPDATE SET last_reconciled_height = EXCLUDED.last_reconciled_height, updated_at = EXCLUDED.updated_at
WHERE checkpoints.last_reconciled_height <= EXCLUDED.last_reconciled_height`

	updatedAt := cp.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	tag, err := s.pool.Exec(ctx, query,
		string(cp.Key.Chain), string(cp.Key.Protocol),
		cp.Key.PrimaryEndpoint, cp.Key.SecondaryEndpoint,
		int64(cp.LastReconciledHeight), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert checkpoint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stored height exceeds %d", ErrNonMonotonic, cp.LastReconciledHeight)
	}
	return nil
}

// Close implements Store.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
