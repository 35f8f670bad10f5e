package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShayCichocki/careercraft/internal/api"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Completer sends a system and user prompt to a language model and returns
// its text response. *api.Runner satisfies it.
type Completer interface {
	RunWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const claudeSystemPrompt = `You are a career advisor. Given a user's profile, suggest concrete career paths.

Respond ONLY with a JSON array. Each element must have:
- "title": the role or career path
- "summary": one or two sentences on why it fits and the first step to take
- "matched_skills": profile skills that support it
- "matched_interests": profile interests that support it
- "score": relevance between 0 and 1

Order the array from most to least relevant.`

// Claude asks an Anthropic model for recommendations.
type Claude struct {
	completer Completer
	limit     int
}

// NewClaude creates a Claude provider returning at most limit results
// (0 means no limit).
func NewClaude(completer Completer, limit int) *Claude {
	return &Claude{completer: completer, limit: limit}
}

// GenerateRecommendations prompts the model with the profile and parses its
// JSON answer.
func (c *Claude) GenerateRecommendations(ctx context.Context, profile models.UserProfile) ([]models.Recommendation, error) {
	prompt, err := buildClaudePrompt(profile, c.limit)
	if err != nil {
		return nil, wrapErr(ProviderClaude, err)
	}

	response, err := c.completer.RunWithSystem(ctx, claudeSystemPrompt, prompt)
	if err != nil {
		return nil, wrapErr(ProviderClaude, err)
	}

	var recs []models.Recommendation
	if err := api.ExtractJSON(response, &recs); err != nil {
		return nil, wrapErr(ProviderClaude, err)
	}
	if len(recs) == 0 {
		return nil, wrapErr(ProviderClaude, errors.New("model returned no recommendations"))
	}

	if c.limit > 0 && len(recs) > c.limit {
		recs = recs[:c.limit]
	}
	for i := range recs {
		recs[i].Title = strings.TrimSpace(recs[i].Title)
		if recs[i].ID == "" {
			recs[i].ID = strconv.Itoa(i + 1)
		}
	}

	return recs, nil
}

func buildClaudePrompt(profile models.UserProfile, limit int) (string, error) {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("PROFILE:\n")
	sb.Write(data)
	sb.WriteString("\n\n")
	if limit > 0 {
		fmt.Fprintf(&sb, "Suggest up to %d career paths.", limit)
	} else {
		sb.WriteString("Suggest career paths.")
	}
	return sb.String(), nil
}
