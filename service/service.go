package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/radix/logging"
	"github.com/spacemeshos/radix/notation"
)

//go:generate mockgen -package mocks -destination mocks/history.go . History

// History records successful conversions.
type History interface {
	Save(ctx context.Context, res *notation.Result) error
}

var (
	conversionsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "radix",
		Subsystem: "conversion",
		Name:      "total",
		Help:      "Number of successful conversions by detected numeral system",
	}, []string{"system"})

	failuresMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "radix",
		Subsystem: "conversion",
		Name:      "failures_total",
		Help:      "Number of rejected inputs by failure kind",
	}, []string{"kind"})

	cacheHitsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "radix",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Number of conversions served from the cache",
	})

	latencyMetric = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "radix",
		Subsystem: "conversion",
		Name:      "latency_seconds",
		Help:      "Latency of uncached conversions",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 16),
	})
)

type Service struct {
	cfg     Config
	cache   *lru.Cache
	history History
}

type OptionFunc func(*newServiceOptions)

type newServiceOptions struct {
	cfg     Config
	history History
}

func WithConfig(cfg Config) OptionFunc {
	return func(opts *newServiceOptions) {
		opts.cfg = cfg
	}
}

func WithHistory(history History) OptionFunc {
	return func(opts *newServiceOptions) {
		opts.history = history
	}
}

func New(ctx context.Context, opts ...OptionFunc) (*Service, error) {
	options := newServiceOptions{
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	s := &Service{
		cfg:     options.cfg,
		history: options.history,
	}
	if s.cfg.CacheSize > 0 {
		cache, err := lru.New(s.cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating conversion cache: %w", err)
		}
		s.cache = cache
	}
	logging.FromContext(ctx).Debug("conversion service created",
		zap.Int("cache-size", s.cfg.CacheSize),
		zap.Bool("history", s.history != nil),
		zap.Int("batch-workers", s.cfg.BatchWorkers),
	)
	return s, nil
}

// Convert renders input in all numeral systems.
func (s *Service) Convert(ctx context.Context, input string) (*notation.Result, error) {
	logger := logging.FromContext(ctx).With(zap.String("input", input))

	res, cached := s.lookup(input)
	if cached {
		cacheHitsMetric.Inc()
		logger.Debug("retrieved conversion from the cache")
	} else {
		start := time.Now()
		var err error
		res, err = notation.Convert(input)
		latencyMetric.Observe(time.Since(start).Seconds())
		if err != nil {
			failuresMetric.WithLabelValues(failureKind(err)).Inc()
			logger.Debug("rejected input", zap.Error(err))
			return nil, err
		}
		if s.cache != nil {
			s.cache.Add(input, res)
		}
	}
	conversionsMetric.WithLabelValues(res.System.String()).Inc()
	logger.Debug("converted", zap.Object("result", res))

	if s.history != nil {
		if err := s.history.Save(ctx, res); err != nil {
			logger.Warn("failed to record conversion in history", zap.Error(err))
		}
	}
	// Callers get their own copy; cached results stay untouched.
	out := *res
	return &out, nil
}

func (s *Service) lookup(input string) (*notation.Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	if res, ok := s.cache.Get(input); ok {
		// SAFETY: type assertion will never panic as we insert only `*notation.Result` values.
		return res.(*notation.Result), true
	}
	return nil, false
}

// ConvertBatch converts all inputs concurrently. Results keep the order of
// inputs; a failed input leaves a nil result and contributes to the returned
// *multierror.Error.
func (s *Service) ConvertBatch(ctx context.Context, inputs []string) ([]*notation.Result, error) {
	results := make([]*notation.Result, len(inputs))
	errs := make([]error, len(inputs))

	var eg errgroup.Group
	if s.cfg.BatchWorkers > 0 {
		eg.SetLimit(s.cfg.BatchWorkers)
	}
	for i, input := range inputs {
		i, input := i, input
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			res, err := s.Convert(ctx, input)
			if err != nil {
				errs[i] = fmt.Errorf("%q: %w", input, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = eg.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return results, result.ErrorOrNil()
}

func failureKind(err error) string {
	var nerr *notation.Error
	if errors.As(err, &nerr) {
		return nerr.Kind.String()
	}
	return "unknown"
}
