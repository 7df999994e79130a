// Package main contains the entrypoint for the ordinal comparator: a
// fetch-and-diff run over a block range against two indexer endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wanyvic/ordinal-comparator/internal/checkpoint"
	"github.com/wanyvic/ordinal-comparator/internal/compare"
	"github.com/wanyvic/ordinal-comparator/internal/metrics"
	"github.com/wanyvic/ordinal-comparator/internal/model"
	"github.com/wanyvic/ordinal-comparator/internal/ordapi"
	"github.com/wanyvic/ordinal-comparator/internal/recon"
	"github.com/wanyvic/ordinal-comparator/internal/report"
)

type config struct {
	Chain             string        `long:"chain" env:"COMPARATOR_CHAIN" description:"chain to reconcile (bitcoin, fractal)" default:"bitcoin"`
	Protocol          string        `long:"protocol" env:"COMPARATOR_PROTOCOL" description:"protocol to reconcile (ordinal, brc20)" required:"true"`
	PrimaryEndpoint   string        `long:"primary-endpoint" env:"COMPARATOR_PRIMARY_ENDPOINT" description:"primary (reference) indexer URL" required:"true"`
	SecondaryEndpoint string        `long:"secondary-endpoint" env:"COMPARATOR_SECONDARY_ENDPOINT" description:"secondary (candidate) indexer URL" required:"true"`
	StartHeight       uint64        `long:"start-height" env:"COMPARATOR_START_HEIGHT" description:"first height to reconcile (0 = protocol activation height)"`
	EndHeight         uint64        `long:"end-height" env:"COMPARATOR_END_HEIGHT" description:"last height to reconcile (0 = common chain tip)"`
	Workers           int           `long:"workers" env:"COMPARATOR_WORKERS" description:"concurrent block workers" default:"100"`
	TolerateGaps      bool          `long:"tolerate-gaps" env:"COMPARATOR_TOLERATE_GAPS" description:"advance the checkpoint past heights whose fetch failed"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"COMPARATOR_HTTP_TIMEOUT" description:"per-request endpoint timeout" default:"30s"`
	EndpointRPS       int           `long:"endpoint-rps" env:"COMPARATOR_ENDPOINT_RPS" description:"request rate limit per endpoint" default:"50"`
	PostgresDSN       string        `long:"postgres-dsn" env:"COMPARATOR_POSTGRES_DSN" description:"Postgres DSN for the checkpoint store (file store used when empty)"`
	CheckpointDir     string        `long:"checkpoint-dir" env:"COMPARATOR_CHECKPOINT_DIR" description:"directory for file checkpoints" default:"checkpoints"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"COMPARATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN for the durable report sink (log-only when empty)"`
	MetricsAddr       string        `long:"metrics-addr" env:"COMPARATOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

const interruptExitCode = 130

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("run interrupted")
			_ = logger.Sync()
			os.Exit(interruptExitCode)
		}
		logger.Fatal("comparator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chain, err := model.ParseChain(cfg.Chain)
	if err != nil {
		return err
	}
	protocol, err := model.ParseProtocol(cfg.Protocol)
	if err != nil {
		return err
	}

	runCfg := model.RunConfig{
		Chain:             chain,
		Protocol:          protocol,
		PrimaryEndpoint:   cfg.PrimaryEndpoint,
		SecondaryEndpoint: cfg.SecondaryEndpoint,
		StartHeight:       cfg.StartHeight,
		EndHeight:         cfg.EndHeight,
		Workers:           cfg.Workers,
		TolerateGaps:      cfg.TolerateGaps,
	}
	if err := runCfg.Validate(); err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	primary := ordapi.NewClient(cfg.PrimaryEndpoint, protocol, cfg.HTTPTimeout, cfg.EndpointRPS,
		metrics.NewEndpointClient("primary", chain, protocol))
	secondary := ordapi.NewClient(cfg.SecondaryEndpoint, protocol, cfg.HTTPTimeout, cfg.EndpointRPS,
		metrics.NewEndpointClient("secondary", chain, protocol))

	if err := verifyNetwork(ctx, primary, chain, "primary"); err != nil {
		return err
	}
	if err := verifyNetwork(ctx, secondary, chain, "secondary"); err != nil {
		return err
	}

	store, err := newCheckpointStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init checkpoint store: %w", err)
	}
	defer store.Close()

	sink, err := newReportSink(ctx, cfg, chain, protocol, logger)
	if err != nil {
		return fmt.Errorf("init report sink: %w", err)
	}
	defer func() {
		if cerr := sink.Close(context.Background()); cerr != nil {
			logger.Error("failed to close report sink", zap.Error(cerr))
		}
	}()

	comparator, err := compare.ForProtocol(protocol)
	if err != nil {
		return err
	}

	scheduler := recon.NewScheduler(primary, secondary, comparator, cfg.Workers,
		logger.Named("scheduler"), metrics.NewScheduler(chain, protocol))
	engine, err := recon.NewEngine(runCfg, scheduler, primary, secondary, store, sink,
		logger.Named("engine"), metrics.NewEngine(chain, protocol))
	if err != nil {
		return err
	}

	summary, err := engine.Run(ctx)
	logSummary(logger, summary)
	return err
}

func verifyNetwork(ctx context.Context, client *ordapi.Client, chain model.Chain, role string) error {
	info, err := client.NodeInfo(ctx)
	if err != nil {
		return fmt.Errorf("%s endpoint node info: %w", role, err)
	}
	if info.Network != string(chain) {
		return fmt.Errorf("%s endpoint serves network %q, expected %q", role, info.Network, chain)
	}
	return nil
}

func newCheckpointStore(ctx context.Context, cfg config) (checkpoint.Store, error) {
	if cfg.PostgresDSN != "" {
		return checkpoint.NewPostgresStore(ctx, cfg.PostgresDSN, metrics.NewCheckpointStore("postgres"))
	}
	return checkpoint.NewFileStore(cfg.CheckpointDir, metrics.NewCheckpointStore("file"))
}

func newReportSink(ctx context.Context, cfg config, chain model.Chain, protocol model.Protocol, logger *zap.Logger) (report.Sink, error) {
	logSink := report.NewLogSink(logger.Named("report"), chain, protocol)
	if cfg.ClickhouseDSN == "" {
		return report.NewMultiSink(logSink), nil
	}

	chSink, err := report.NewClickHouseSink(cfg.ClickhouseDSN, chain, protocol,
		logger.Named("clickhouse-sink"), metrics.NewReportSink("clickhouse"))
	if err != nil {
		return nil, err
	}
	chSink.Start(ctx)
	return report.NewMultiSink(logSink, chSink), nil
}

func logSummary(logger *zap.Logger, summary *recon.Summary) {
	if summary == nil {
		return
	}

	fields := []zap.Field{
		zap.String("state", string(summary.State)),
		zap.Uint64("first_height", summary.FirstHeight),
		zap.Uint64("last_finalized", summary.LastFinalized),
		zap.Uint64("blocks_ok", summary.BlocksOK),
		zap.Uint64("blocks_unverified", summary.BlocksUnverified),
		zap.Uint64("divergent_blocks", summary.DivergentBlocks),
		zap.Uint64("divergences", summary.TotalDivergences()),
	}
	for kind, n := range summary.ByKind {
		fields = append(fields, zap.Uint64("kind_"+string(kind), n))
	}
	for bucket, n := range summary.ByBucket {
		fields = append(fields, zap.Uint64(fmt.Sprintf("bucket_%d", bucket), n))
	}
	logger.Info("run summary", fields...)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
