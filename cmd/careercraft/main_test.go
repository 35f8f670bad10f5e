package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ShayCichocki/careercraft/internal/config"
	"github.com/ShayCichocki/careercraft/internal/wizard"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

func testConfig(t *testing.T, provider string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Recommend.Provider = provider
	cfg.Recommend.StaticLatency = 0
	cfg.Catalog.Path = filepath.Join(dir, "catalog.db")
	cfg.Log.Path = filepath.Join(dir, "logs", "careercraft.log")
	return cfg
}

func validOptions() adviseOptions {
	return adviseOptions{
		name:      "Ada",
		skills:    []string{"Go"},
		interests: []string{"Databases"},
		goals:     "Build scalable backend services for a living",
	}
}

func TestBuildProfile(t *testing.T) {
	profile, err := buildProfile(validOptions())
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Name())
	assert.Equal(t, []string{"Go"}, profile.Skills())
}

func TestBuildProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*adviseOptions)
		want   string
	}{
		{"missing name", func(o *adviseOptions) { o.name = "  " }, wizard.MsgNameRequired},
		{"no skills", func(o *adviseOptions) { o.skills = nil }, wizard.MsgSkillRequired},
		{"blank skills", func(o *adviseOptions) { o.skills = []string{" ", ""} }, wizard.MsgSkillRequired},
		{"no interests", func(o *adviseOptions) { o.interests = nil }, wizard.MsgInterestRequired},
		{"short goals", func(o *adviseOptions) { o.goals = "get rich" }, wizard.MsgGoalsTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			_, err := buildProfile(opts)
			var verr *wizard.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.want, verr.Message)
		})
	}
}

func TestRunAdvise_Static(t *testing.T) {
	cfg := testConfig(t, "static")
	opts := validOptions()
	opts.metrics = true

	var out bytes.Buffer
	require.NoError(t, runAdvise(context.Background(), &out, cfg, opts))

	s := out.String()
	assert.Contains(t, s, "Your Personalized Roadmap, Ada!")
	assert.Contains(t, s, "1. Frontend Developer")
	assert.Contains(t, s, "3. Fullstack Engineer")
	assert.Contains(t, s, `careercraft_recommend_requests_total{provider="static",status="success"} 1`)
}

func TestRunAdvise_CatalogJSON(t *testing.T) {
	cfg := testConfig(t, "catalog")
	opts := validOptions()
	opts.asJSON = true

	var out bytes.Buffer
	require.NoError(t, runAdvise(context.Background(), &out, cfg, opts))

	var recs []models.Recommendation
	require.NoError(t, json.Unmarshal(out.Bytes(), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "backend-developer", recs[0].ID)
	assert.Equal(t, []string{"Go"}, recs[0].MatchedSkills)
	assert.LessOrEqual(t, len(recs), cfg.Recommend.Limit)
}

func TestRunAdvise_InvalidProfileSkipsService(t *testing.T) {
	cfg := testConfig(t, "static")
	opts := validOptions()
	opts.goals = "too short"

	var out bytes.Buffer
	err := runAdvise(context.Background(), &out, cfg, opts)
	require.Error(t, err)
	assert.Empty(t, out.String())

	_, statErr := os.Stat(cfg.Log.Path)
	assert.True(t, os.IsNotExist(statErr), "no logger should be created for an invalid profile")
}

func TestBuildService_ClaudeWithoutKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	cfg := testConfig(t, "claude")

	_, _, err := buildService(context.Background(), cfg, zap.NewNop(), prometheus.NewRegistry())
	assert.ErrorIs(t, err, config.ErrNoAPIKey)
}

func TestBuildService_ClaudeRegistersTokenMetrics(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key-0123456789")
	cfg := testConfig(t, "claude")
	reg := prometheus.NewRegistry()

	_, cleanup, err := buildService(context.Background(), cfg, zap.NewNop(), reg)
	require.NoError(t, err)
	defer cleanup()

	n, err := testutil.GatherAndCount(reg, "careercraft_anthropic_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBuildService_UnknownProvider(t *testing.T) {
	cfg := testConfig(t, "oracle")

	_, _, err := buildService(context.Background(), cfg, zap.NewNop(), prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestOpenCatalog_SeedFileAndWatch(t *testing.T) {
	cfg := testConfig(t, "catalog")
	seed := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`roles:
  - id: gardener
    title: Gardener
    skills: [Pruning]
`), 0644))
	cfg.Catalog.Seed = seed
	cfg.Catalog.Watch = true

	store, cleanup, err := openCatalog(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCatalogImportAndList(t *testing.T) {
	cfg := testConfig(t, "catalog")
	ctx := context.Background()

	seed := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`roles:
  - id: baker
    title: Baker
    skills: [Bread, Pastry]
    interests: [Food]
  - id: brewer
    title: Brewer
    skills: [Chemistry]
`), 0644))

	var out bytes.Buffer
	require.NoError(t, runCatalogImport(ctx, &out, cfg, seed))
	assert.Contains(t, out.String(), "Imported 2 roles")

	out.Reset()
	require.NoError(t, runCatalogList(ctx, &out, cfg))
	s := out.String()
	assert.Contains(t, s, "Baker")
	assert.Contains(t, s, "skills:    Bread, Pastry")
	assert.Contains(t, s, "2 roles in")
}

func TestCatalogList_SeedsDefaults(t *testing.T) {
	cfg := testConfig(t, "catalog")

	var out bytes.Buffer
	require.NoError(t, runCatalogList(context.Background(), &out, cfg))
	assert.Contains(t, out.String(), "Backend Developer")
}

func TestRunConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := testConfig(t, "catalog")

	var out bytes.Buffer
	require.NoError(t, runConfig(&out, cfg, nil))
	assert.Contains(t, out.String(), "recommend.provider: catalog")
	assert.Contains(t, out.String(), "anthropic.api_key: (not set)")

	out.Reset()
	require.NoError(t, runConfig(&out, cfg, []string{"recommend.limit", "3"}))
	assert.Contains(t, out.String(), "Set recommend.limit = 3")

	loaded, err := config.LoadFromPath(config.GetUserConfigPath())
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Recommend.Limit)

	out.Reset()
	require.NoError(t, runConfig(&out, cfg, []string{"recommend.limit"}))
	assert.Equal(t, "3\n", out.String())

	assert.Error(t, runConfig(&out, cfg, []string{"recommend.provider", "oracle"}))
	assert.Error(t, runConfig(&out, cfg, []string{"nope"}))
}

func TestVersion(t *testing.T) {
	v := Version()
	assert.NotEmpty(t, v)
	assert.False(t, strings.ContainsAny(v, " \n"))
}
