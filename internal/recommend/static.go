package recommend

import (
	"context"
	"time"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// DefaultStaticLatency is the simulated response delay of the static provider.
const DefaultStaticLatency = time.Second

// Static returns a fixed list of recommendations after a simulated delay.
// It ignores the profile and is useful for demos and offline use.
type Static struct {
	Latency time.Duration
	Results []models.Recommendation
}

// NewStatic creates a Static provider with the default result set.
func NewStatic(latency time.Duration) *Static {
	return &Static{
		Latency: latency,
		Results: DefaultStaticResults(),
	}
}

// DefaultStaticResults returns the built-in sample recommendations.
func DefaultStaticResults() []models.Recommendation {
	return []models.Recommendation{
		{ID: "1", Title: "Frontend Developer", Summary: "Build user-facing web applications."},
		{ID: "2", Title: "Backend Developer", Summary: "Design services, APIs and data stores."},
		{ID: "3", Title: "Fullstack Engineer", Summary: "Own features end to end across the stack."},
	}
}

// GenerateRecommendations waits for Latency, then returns a copy of Results.
func (s *Static) GenerateRecommendations(ctx context.Context, _ models.UserProfile) ([]models.Recommendation, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, wrapErr(ProviderStatic, ctx.Err())
		case <-timer.C:
		}
	}

	out := make([]models.Recommendation, len(s.Results))
	copy(out, s.Results)
	return out, nil
}
