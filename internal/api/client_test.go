package api

import (
	"os"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewClient_WithAPIKey(t *testing.T) {
	client, err := NewClient(ClientConfig{
		APIKey: "test-key-123",
		Model:  anthropic.Model("claude-haiku-4-5-20251001"),
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.Model() != anthropic.Model("claude-haiku-4-5-20251001") {
		t.Errorf("Model = %q, want %q", client.Model(), anthropic.Model("claude-haiku-4-5-20251001"))
	}
	if client.Usage() == nil {
		t.Error("Usage should not be nil")
	}
}

func TestNewClient_WithEnvVar(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-test-key")

	if _, err := NewClient(ClientConfig{}); err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
}

func TestNewClient_NoAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	os.Unsetenv("ANTHROPIC_API_KEY")

	_, err := NewClient(ClientConfig{})
	if err == nil {
		t.Fatal("NewClient should fail without API key")
	}
	if err.Error() != "ANTHROPIC_API_KEY environment variable is not set" {
		t.Errorf("Error = %q", err.Error())
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClientConfig
		want anthropic.Model
	}{
		{"default", ClientConfig{}, DefaultModel},
		{"direct keeps name", ClientConfig{Model: anthropic.ModelClaudeSonnet4_20250514}, anthropic.ModelClaudeSonnet4_20250514},
		{"bedrock sonnet 4", ClientConfig{UseAWSBedrock: true, Model: anthropic.ModelClaudeSonnet4_20250514}, "us.anthropic.claude-sonnet-4-20250514-v1:0"},
		{"bedrock default", ClientConfig{UseAWSBedrock: true}, "us.anthropic.claude-sonnet-4-20250514-v1:0"},
		{"bedrock haiku 4.5", ClientConfig{UseAWSBedrock: true, Model: anthropic.Model("claude-haiku-4-5-20251001")}, "us.anthropic.claude-haiku-4-5-20251001-v1:0"},
		{"already a profile", ClientConfig{UseAWSBedrock: true, Model: "us.anthropic.claude-sonnet-4-20250514-v1:0"}, "us.anthropic.claude-sonnet-4-20250514-v1:0"},
		{"unknown model", ClientConfig{UseAWSBedrock: true, Model: "my-custom-model"}, "my-custom-model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveModel(tt.cfg); got != tt.want {
				t.Errorf("resolveModel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsage_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	u := NewUsage(reg)

	u.Record(100, 50)
	u.Record(200, 100)

	if got := testutil.ToFloat64(u.requests); got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(u.tokens.WithLabelValues("input")); got != 300 {
		t.Errorf("input tokens = %v, want 300", got)
	}
	if got := testutil.ToFloat64(u.tokens.WithLabelValues("output")); got != 150 {
		t.Errorf("output tokens = %v, want 150", got)
	}

	n, err := testutil.GatherAndCount(reg, "careercraft_anthropic_tokens_total")
	if err != nil {
		t.Fatalf("GatherAndCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("token series = %d, want 2", n)
	}
}

func TestNewUsage_NilRegisterer(t *testing.T) {
	u := NewUsage(nil)
	u.Record(1, 1)

	if got := testutil.ToFloat64(u.requests); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}
