package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"go.uber.org/zap"
)

const defaultMaxTokens = 4096

// Runner provides simple text-in/text-out Claude API calls.
type Runner struct {
	client    *Client
	maxTokens int64
}

// NewRunner creates a new API runner.
func NewRunner(client *Client) *Runner {
	return &Runner{client: client, maxTokens: defaultMaxTokens}
}

// RunWithSystem executes a prompt with a system message and returns the
// concatenated text blocks of the response.
func (r *Runner) RunWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     r.client.Model(),
		MaxTokens: r.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	start := time.Now()
	resp, err := r.client.inner.Messages.New(ctx, params)
	if err != nil {
		r.client.logger.Warn("anthropic request failed",
			zap.String("model", string(params.Model)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("API call failed: %w", err)
	}

	r.client.usage.Record(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	r.client.logger.Info("anthropic request completed",
		zap.String("model", string(params.Model)),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("duration", time.Since(start)),
	)

	var result strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}

	return result.String(), nil
}

// ExtractJSON parses the first JSON object or array embedded in a model
// response into target. Models often wrap JSON in prose or code fences.
func ExtractJSON(response string, target any) error {
	start := strings.IndexAny(response, "[{")
	if start == -1 {
		return fmt.Errorf("no valid JSON found in response: %s", truncate(response, 200))
	}

	closer := "}"
	if response[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(response, closer)
	if end <= start {
		return fmt.Errorf("no valid JSON found in response: %s", truncate(response, 200))
	}

	jsonStr := response[start : end+1]
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("parse JSON: %w (response: %s)", err, truncate(jsonStr, 200))
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
