// Package api is the Anthropic client behind the claude recommendation
// provider. Calls go to the Anthropic API directly or through AWS Bedrock,
// and every response's token usage is counted in Prometheus and logged.
package api

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultModel is used when no model is configured.
const DefaultModel = anthropic.ModelClaudeSonnet4_20250514

// errNoAPIKey is returned when direct API access has no key.
var errNoAPIKey = errors.New("ANTHROPIC_API_KEY environment variable is not set")

// ClientConfig selects the endpoint, credentials and model.
type ClientConfig struct {
	Model  anthropic.Model
	APIKey string // falls back to ANTHROPIC_API_KEY

	UseAWSBedrock bool
	AWSRegion     string
	AWSProfile    string

	// BaseURL overrides the API endpoint, e.g. for a proxy.
	BaseURL string

	// Registerer receives the usage metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
	Logger     *zap.Logger
}

// Client is a configured Anthropic client.
type Client struct {
	inner  anthropic.Client
	model  anthropic.Model
	usage  *Usage
	logger *zap.Logger
}

// NewClient builds a Client from cfg.
func NewClient(cfg ClientConfig) (*Client, error) {
	opts, err := requestOptions(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		inner:  anthropic.NewClient(opts...),
		model:  resolveModel(cfg),
		usage:  NewUsage(cfg.Registerer),
		logger: logger,
	}, nil
}

// requestOptions picks Bedrock or API-key auth plus an optional base URL.
func requestOptions(cfg ClientConfig) ([]option.RequestOption, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		var load []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			load = append(load, awsconfig.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			load = append(load, awsconfig.WithSharedConfigProfile(cfg.AWSProfile))
		}
		opts = append(opts, bedrock.WithLoadDefaultConfig(context.Background(), load...))
	} else {
		key := cfg.APIKey
		if key == "" {
			key = os.Getenv("ANTHROPIC_API_KEY")
		}
		if key == "" {
			return nil, errNoAPIKey
		}
		opts = append(opts, option.WithAPIKey(key))
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return opts, nil
}

// bedrockProfiles maps model names to Bedrock cross-region inference
// profiles.
var bedrockProfiles = map[anthropic.Model]anthropic.Model{
	anthropic.ModelClaudeSonnet4_20250514:         "us.anthropic.claude-sonnet-4-20250514-v1:0",
	anthropic.Model("claude-sonnet-4-5-20250929"): "us.anthropic.claude-sonnet-4-5-20250929-v1:0",
	anthropic.Model("claude-haiku-4-5-20251001"):  "us.anthropic.claude-haiku-4-5-20251001-v1:0",
	anthropic.ModelClaude3_5Haiku20241022:         "us.anthropic.claude-3-5-haiku-20241022-v1:0",
}

// resolveModel applies the default and, for Bedrock, the profile name.
// Unknown models and names already in profile form pass through.
func resolveModel(cfg ClientConfig) anthropic.Model {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if !cfg.UseAWSBedrock || strings.HasPrefix(string(model), "us.anthropic.") {
		return model
	}
	if profile, ok := bedrockProfiles[model]; ok {
		return profile
	}
	return model
}

// Model returns the model requests are sent to.
func (c *Client) Model() anthropic.Model {
	return c.model
}

// Usage returns the client's token counters.
func (c *Client) Usage() *Usage {
	return c.usage
}
