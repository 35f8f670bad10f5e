package recommend

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Instrumented records Prometheus metrics around a Service.
type Instrumented struct {
	next     Service
	provider string

	requestsTotal   *prometheus.CounterVec
	resultsTotal    prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// Instrument wraps svc, registering its metrics with reg.
// Use a dedicated registry per process; registering twice on the same
// registry panics.
func Instrument(svc Service, provider string, reg prometheus.Registerer) *Instrumented {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"provider": provider}

	return &Instrumented{
		next:     svc,
		provider: provider,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "careercraft_recommend_requests_total",
				Help:        "Total number of recommendation requests by outcome",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
		resultsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "careercraft_recommend_results_total",
				Help:        "Total number of recommendations returned",
				ConstLabels: constLabels,
			},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "careercraft_recommend_request_duration_seconds",
				Help:        "Duration of recommendation requests in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
	}
}

// GenerateRecommendations delegates to the wrapped service and records the
// outcome.
func (m *Instrumented) GenerateRecommendations(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error) {
	start := time.Now()
	recs, err := m.next.GenerateRecommendations(ctx, profile)

	status := "success"
	if err != nil {
		status = "error"
	}
	m.requestsTotal.WithLabelValues(status).Inc()
	m.requestDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	if err == nil {
		m.resultsTotal.Add(float64(len(recs)))
	}

	return recs, err
}
