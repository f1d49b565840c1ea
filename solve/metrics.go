package solve

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

var (
	tracer = otel.Tracer("gatetree.solve")
	meter  = otel.Meter("gatetree.solve")
)

var (
	casesTotal      metric.Int64Counter
	impossibleTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		casesTotal, err = meter.Int64Counter(
			"gatetree_cases_total",
			metric.WithDescription("Total number of solved cases"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		impossibleTotal, err = meter.Int64Counter(
			"gatetree_impossible_total",
			metric.WithDescription("Total number of cases whose target value is unreachable"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

func recordRun(ctx context.Context, logger *zap.Logger, cases, impossible int) {
	if err := initMetrics(); err != nil {
		logger.Warn("metrics unavailable", zap.Error(err))
		return
	}
	casesTotal.Add(ctx, int64(cases))
	impossibleTotal.Add(ctx, int64(impossible))
}
