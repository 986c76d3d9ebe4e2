package generator

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GenerationMetricsRecorder defines the interface for recording generation
// metrics. Abstracting the recorder keeps providers testable without a
// Prometheus registry and reusable across AI backends.
type GenerationMetricsRecorder interface {
	// RecordLength records the length of a generated summary in characters.
	RecordLength(length int)

	// RecordDuration records the time taken by a provider to generate
	// a summary.
	RecordDuration(provider string, duration time.Duration)

	// RecordFailure increments the failure counter for a provider after
	// retries are exhausted.
	RecordFailure(provider string)
}

// PrometheusGenerationMetrics implements GenerationMetricsRecorder using
// Prometheus metrics.
type PrometheusGenerationMetrics struct {
	lengthHistogram   prometheus.Histogram
	durationHistogram *prometheus.HistogramVec
	failureCounter    *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusGenerationMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateHistogramVec gets an existing histogram vector or creates a new one
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

// getOrCreateCounterVec gets an existing counter vector or creates a new one
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// NewPrometheusGenerationMetrics creates a new Prometheus-based metrics
// recorder. Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusGenerationMetrics() *PrometheusGenerationMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusGenerationMetrics{
			lengthHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "docbrief_summary_length_characters",
				Help:    "Distribution of generated summary lengths in characters (Unicode runes)",
				Buckets: []float64{100, 300, 500, 700, 900, 1100, 1500, 2000},
			}),
			durationHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "docbrief_generation_duration_seconds",
				Help:    "Time taken to generate a summary via AI API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, []string{"provider"}),
			failureCounter: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "docbrief_generation_failures_total",
				Help: "Total generation failures after retries, by provider",
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements GenerationMetricsRecorder.RecordLength
func (p *PrometheusGenerationMetrics) RecordLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordDuration implements GenerationMetricsRecorder.RecordDuration
func (p *PrometheusGenerationMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordFailure implements GenerationMetricsRecorder.RecordFailure
func (p *PrometheusGenerationMetrics) RecordFailure(provider string) {
	p.failureCounter.WithLabelValues(provider).Inc()
}
