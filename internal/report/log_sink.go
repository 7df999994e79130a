package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/wanyvic/ordinal-comparator/internal/model"
)

// LogSink writes block results to the structured log. A found divergence and
// an unverified height are different findings and are logged under different
// messages so they can never be conflated downstream.
type LogSink struct {
	logger   *zap.Logger
	chain    model.Chain
	protocol model.Protocol
}

// NewLogSink builds a log-backed report sink.
func NewLogSink(logger *zap.Logger, chain model.Chain, protocol model.Protocol) *LogSink {
	return &LogSink{logger: logger, chain: chain, protocol: protocol}
}

// Emit logs one finalized block result.
func (s *LogSink) Emit(_ context.Context, res model.BlockResult) error {
	base := []zap.Field{
		zap.String("chain", string(s.chain)),
		zap.String("protocol", string(s.protocol)),
		zap.Uint64("height", res.Height),
	}

	switch res.Status {
	case model.StatusOK:
		if len(res.Divergences) == 0 {
			s.logger.Debug("block verified", base...)
			return nil
		}
		for _, d := range res.Divergences {
			s.logger.Warn("divergence found", append(base,
				zap.String("kind", string(d.Kind)),
				zap.String("key", d.Key),
				zap.String("detail", d.Detail))...)
		}
	case model.StatusFetchFailed:
		s.logger.Warn("height unverified", append(base,
			zap.String("reason", res.Reason))...)
	case model.StatusFatal:
		s.logger.Error("verification aborted", append(base,
			zap.String("reason", res.Reason))...)
	}
	return nil
}

// Close implements Sink; the log sink holds no resources.
func (s *LogSink) Close(context.Context) error {
	return nil
}
