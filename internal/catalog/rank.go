package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Score weights.
const (
	skillWeight    = 2
	interestWeight = 1
	keywordWeight  = 1
)

// Rank scores every role against the profile and returns at most limit
// recommendations (0 means no limit), best first. Roles with no overlap are
// omitted, so the result may be empty.
func (s *Store) Rank(ctx context.Context, profile models.UserProfile, limit int) ([]models.Recommendation, error) {
	roles, err := s.Roles(ctx)
	if err != nil {
		return nil, err
	}
	return rankRoles(roles, profile, limit), nil
}

func rankRoles(roles []Role, profile models.UserProfile, limit int) []models.Recommendation {
	goals := strings.ToLower(profile.Goals())
	skills := profile.Skills()
	interests := profile.Interests()

	var recs []models.Recommendation
	for _, r := range roles {
		matchedSkills := intersect(skills, r.Skills)
		matchedInterests := intersect(interests, r.Interests)

		keywords := 0
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(goals, strings.ToLower(kw)) {
				keywords++
			}
		}

		score := skillWeight*len(matchedSkills) + interestWeight*len(matchedInterests) + keywordWeight*keywords
		if score == 0 {
			continue
		}

		recs = append(recs, models.Recommendation{
			ID:               r.ID,
			Title:            r.Title,
			Summary:          r.Summary,
			MatchedSkills:    matchedSkills,
			MatchedInterests: matchedInterests,
			Score:            float64(score),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Title < recs[j].Title
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// intersect returns the profile tags that appear in terms, compared
// case-insensitively, in profile order.
func intersect(tags []string, terms []string) []string {
	var out []string
	for _, tag := range tags {
		if models.TagList(terms).Contains(tag) {
			out = append(out, tag)
		}
	}
	return out
}
