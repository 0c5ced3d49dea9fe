package blobstore

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics encapsulates Prometheus instrumentation for blob store traffic.
type Metrics struct {
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	errors   *prometheus.CounterVec
	misses   prometheus.Counter
}

// NewMetrics registers the blob store collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blobstore_operations_total",
		Help: "Total number of blob store operations",
	}, []string{"op", "key"})

	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blobstore_errors_total",
		Help: "Total number of failed blob store operations",
	}, []string{"op", "key"})

	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "blobstore_read_misses_total",
		Help: "Total number of reads for absent keys",
	})

	registry.MustRegister(ops, errs, misses)

	return &Metrics{registry: registry, ops: ops, errors: errs, misses: misses}
}

// Registry exposes the underlying registry for scraping or test assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Instrument wraps a Store so every operation is counted. A nil Metrics
// returns the store unwrapped.
func Instrument(next Store, m *Metrics) Store {
	if m == nil {
		return next
	}
	return &instrumented{next: next, metrics: m}
}

type instrumented struct {
	next    Store
	metrics *Metrics
}

func (s *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := s.next.Get(ctx, key)
	s.metrics.ops.WithLabelValues("get", key).Inc()
	if err != nil {
		s.metrics.errors.WithLabelValues("get", key).Inc()
	} else if !ok {
		s.metrics.misses.Inc()
	}
	return value, ok, err
}

func (s *instrumented) Set(ctx context.Context, key string, value []byte) error {
	err := s.next.Set(ctx, key, value)
	s.metrics.ops.WithLabelValues("set", key).Inc()
	if err != nil {
		s.metrics.errors.WithLabelValues("set", key).Inc()
	}
	return err
}

func (s *instrumented) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	s.metrics.ops.WithLabelValues("delete", key).Inc()
	if err != nil {
		s.metrics.errors.WithLabelValues("delete", key).Inc()
	}
	return err
}
