package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Usage counts Anthropic requests and tokens.
type Usage struct {
	requests prometheus.Counter
	tokens   *prometheus.CounterVec
}

// NewUsage creates the counters and registers them on reg when non-nil.
func NewUsage(reg prometheus.Registerer) *Usage {
	factory := promauto.With(reg)
	return &Usage{
		requests: factory.NewCounter(prometheus.CounterOpts{
			Name: "careercraft_anthropic_requests_total",
			Help: "Completed Anthropic message requests.",
		}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "careercraft_anthropic_tokens_total",
			Help: "Tokens consumed by Anthropic requests.",
		}, []string{"direction"}),
	}
}

// Record adds one request's token counts.
func (u *Usage) Record(input, output int64) {
	u.requests.Inc()
	u.tokens.WithLabelValues("input").Add(float64(input))
	u.tokens.WithLabelValues("output").Add(float64(output))
}
