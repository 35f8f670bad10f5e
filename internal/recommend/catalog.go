package recommend

import (
	"context"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Ranker scores catalog entries against a profile. *catalog.Store
// satisfies it.
type Ranker interface {
	Rank(ctx context.Context, profile models.UserProfile, limit int) ([]models.Recommendation, error)
}

// Catalog recommends roles from a local catalog.
type Catalog struct {
	ranker Ranker
	limit  int
}

// NewCatalog creates a catalog provider returning at most limit results.
func NewCatalog(ranker Ranker, limit int) *Catalog {
	return &Catalog{ranker: ranker, limit: limit}
}

// GenerateRecommendations ranks the catalog for the profile.
func (c *Catalog) GenerateRecommendations(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapErr(ProviderCatalog, err)
	}
	recs, err := c.ranker.Rank(ctx, profile, c.limit)
	if err != nil {
		return nil, wrapErr(ProviderCatalog, err)
	}
	return recs, nil
}
