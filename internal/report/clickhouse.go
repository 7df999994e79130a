package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"github.com/wanyvic/ordinal-comparator/internal/model"
	"github.com/wanyvic/ordinal-comparator/pkg/batcher"
)

const (
	resultFlushSize     = 500
	divergenceFlushSize = 1000
	flushInterval       = time.Second
	flushRPS            = 4
)

type blockResultRow struct {
	Chain           string
	Protocol        string
	Height          uint64
	Hash            string
	Status          string
	DivergenceCount uint32
	Reason          string
	FinalizedAt     time.Time
}

type divergenceRow struct {
	Chain       string
	Protocol    string
	Height      uint64
	Kind        string
	MatchKey    string
	Detail      string
	FinalizedAt time.Time
}

// rowsForResult maps a finalized block result onto its insert rows.
func rowsForResult(chain model.Chain, protocol model.Protocol, res model.BlockResult, at time.Time) (blockResultRow, []divergenceRow) {
	row := blockResultRow{
		Chain:           string(chain),
		Protocol:        string(protocol),
		Height:          res.Height,
		Hash:            res.Hash,
		Status:          string(res.Status),
		DivergenceCount: uint32(len(res.Divergences)),
		Reason:          res.Reason,
		FinalizedAt:     at,
	}

	rows := make([]divergenceRow, 0, len(res.Divergences))
	for _, d := range res.Divergences {
		rows = append(rows, divergenceRow{
			Chain:       string(chain),
			Protocol:    string(protocol),
			Height:      d.Height,
			Kind:        string(d.Kind),
			MatchKey:    d.Key,
			Detail:      d.Detail,
			FinalizedAt: at,
		})
	}
	return row, rows
}

// ClickHouseSink appends block verdicts and divergence entries to ClickHouse.
// Inserts are buffered through batchers; a failed flush is surfaced on the
// next Emit so the engine stops instead of silently dropping report data.
type ClickHouseSink struct {
	conn        clickhouse.Conn
	chain       model.Chain
	protocol    model.Protocol
	results     *batcher.Batcher[blockResultRow]
	divergences *batcher.Batcher[divergenceRow]
	metrics     Metrics

	mu       sync.Mutex
	flushErr error
}

// NewClickHouseSink opens the connection and prepares (but does not start)
// the insert batchers. Call Start before the first Emit.
func NewClickHouseSink(
	dsn string,
	chain model.Chain,
	protocol model.Protocol,
	logger *zap.Logger,
	metrics Metrics,
) (*ClickHouseSink, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	s := &ClickHouseSink{
		conn:     conn,
		chain:    chain,
		protocol: protocol,
		metrics:  metrics,
	}
	s.results = batcher.New(logger.Named("results-batcher"), s.insertBlockResults, resultFlushSize, flushInterval, flushRPS)
	s.divergences = batcher.New(logger.Named("divergences-batcher"), s.insertDivergences, divergenceFlushSize, flushInterval, flushRPS)
	s.results.OnFlushError(s.recordFlushError)
	s.divergences.OnFlushError(s.recordFlushError)
	return s, nil
}

// Start launches the background flush loops.
func (s *ClickHouseSink) Start(ctx context.Context) {
	s.results.Start(ctx)
	s.divergences.Start(ctx)
}

// Emit queues the result's rows for insertion.
func (s *ClickHouseSink) Emit(ctx context.Context, res model.BlockResult) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("emit", err, started)
	}()

	if err = s.takeFlushError(); err != nil {
		return fmt.Errorf("previous flush failed: %w", err)
	}

	row, divRows := rowsForResult(s.chain, s.protocol, res, time.Now().UTC())
	if err = s.results.Add(ctx, row); err != nil {
		return fmt.Errorf("queue block result: %w", err)
	}
	for _, d := range divRows {
		if err = s.divergences.Add(ctx, d); err != nil {
			return fmt.Errorf("queue divergence: %w", err)
		}
	}
	return nil
}

// Close flushes the remaining rows and releases the connection.
func (s *ClickHouseSink) Close(_ context.Context) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("close", err, started)
	}()

	s.results.Stop()
	s.divergences.Stop()
	if cerr := s.conn.Close(); cerr != nil {
		return fmt.Errorf("close clickhouse connection: %w", cerr)
	}
	return s.takeFlushError()
}

func (s *ClickHouseSink) recordFlushError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flushErr == nil {
		s.flushErr = err
	}
}

func (s *ClickHouseSink) takeFlushError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushErr
}

func (s *ClickHouseSink) insertBlockResults(ctx context.Context, rows []blockResultRow) error {
	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO recon_block_results (
	chain,
	protocol,
	height,
	hash,
	status,
	divergence_count,
	reason,
	finalized_at
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block results batch: %w", err)
	}

	for _, row := range rows {
		if err := batch.Append(
			row.Chain,
			row.Protocol,
			row.Height,
			row.Hash,
			row.Status,
			row.DivergenceCount,
			row.Reason,
			row.FinalizedAt,
		); err != nil {
			return fmt.Errorf("append block result: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert block results: %w", err)
	}
	return nil
}

func (s *ClickHouseSink) insertDivergences(ctx context.Context, rows []divergenceRow) error {
	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO recon_divergences (
	chain,
	protocol,
	height,
	kind,
	match_key,
	detail,
	finalized_at
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare divergences batch: %w", err)
	}

	for _, row := range rows {
		if err := batch.Append(
			row.Chain,
			row.Protocol,
			row.Height,
			row.Kind,
			row.MatchKey,
			row.Detail,
			row.FinalizedAt,
		); err != nil {
			return fmt.Errorf("append divergence: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert divergences: %w", err)
	}
	return nil
}
