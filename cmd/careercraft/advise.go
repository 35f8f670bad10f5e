package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/careercraft/internal/config"
	"github.com/ShayCichocki/careercraft/internal/logging"
	"github.com/ShayCichocki/careercraft/internal/results"
	"github.com/ShayCichocki/careercraft/internal/tui"
	"github.com/ShayCichocki/careercraft/internal/wizard"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

// adviseOptions holds the headless profile and output switches.
type adviseOptions struct {
	name      string
	skills    []string
	interests []string
	goals     string
	asJSON    bool
	metrics   bool
}

var adviseOpts adviseOptions

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Get recommendations without the TUI",
	Long: `Build a profile from flags and print career recommendations.

The flags go through the same steps and checks as the interactive form:
a name, at least one skill, at least one interest, and goals of at least
20 characters.

Example:
  careercraft advise --name Ada --skill Go --skill SQL \
    --interest "developer tools" --goals "Lead a platform team in two years"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runAdvise(cmd.Context(), cmd.OutOrStdout(), cfg, adviseOpts)
	},
}

func init() {
	adviseCmd.Flags().StringVar(&adviseOpts.name, "name", "", "Your name")
	adviseCmd.Flags().StringArrayVar(&adviseOpts.skills, "skill", nil, "A current skill (repeatable)")
	adviseCmd.Flags().StringArrayVar(&adviseOpts.interests, "interest", nil, "An interest (repeatable)")
	adviseCmd.Flags().StringVar(&adviseOpts.goals, "goals", "", "Your career goals")
	adviseCmd.Flags().BoolVar(&adviseOpts.asJSON, "json", false, "Print recommendations as JSON")
	adviseCmd.Flags().BoolVar(&adviseOpts.metrics, "metrics", false, "Print service metrics after the results")
}

func runAdvise(ctx context.Context, out io.Writer, cfg *config.Config, opts adviseOptions) error {
	profile, err := buildProfile(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	svc, cleanup, err := buildService(ctx, cfg, logger, reg)
	if err != nil {
		return err
	}
	defer cleanup()

	orch := results.New(svc,
		results.WithLogger(logger),
		results.WithTimeout(cfg.Recommend.Timeout),
	)

	status, err := orch.Run(ctx, profile)
	if err != nil {
		return err
	}
	if status.Phase == results.PhaseError {
		printStatus(out, "✗", status.Reason, color.FgRed)
		return fmt.Errorf("recommendation failed: %s", status.Reason)
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status.Results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
	} else {
		printResults(out, profile.Name(), status.Results)
	}

	if opts.metrics {
		return writeMetrics(out, reg)
	}
	return nil
}

// buildProfile feeds the flags through the wizard so headless input is
// checked exactly like the form.
func buildProfile(opts adviseOptions) (models.UserProfile, error) {
	w := wizard.New()

	w.SetName(opts.name)
	if err := w.Next(); err != nil {
		return models.UserProfile{}, err
	}
	for _, s := range opts.skills {
		w.AddSkill(s)
	}
	if err := w.Next(); err != nil {
		return models.UserProfile{}, err
	}
	for _, i := range opts.interests {
		w.AddInterest(i)
	}
	if err := w.Next(); err != nil {
		return models.UserProfile{}, err
	}
	w.SetGoals(opts.goals)

	return w.Submit()
}

func printResults(out io.Writer, name string, recs []models.Recommendation) {
	title := color.New(color.FgGreen, color.Bold)
	fmt.Fprintln(out, title.Sprint(tui.Headline(name)))
	fmt.Fprintln(out)

	if len(recs) == 0 {
		printStatus(out, "⚠", "No matching roles yet. Try adding more skills or interests.", color.FgYellow)
		return
	}

	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	for i, rec := range recs {
		fmt.Fprintf(out, "%s\n", heading.Sprintf("%d. %s", i+1, rec.Title))
		if rec.Summary != "" {
			fmt.Fprintf(out, "   %s\n", rec.Summary)
		}
		var matched []string
		if len(rec.MatchedSkills) > 0 {
			matched = append(matched, "skills: "+strings.Join(rec.MatchedSkills, ", "))
		}
		if len(rec.MatchedInterests) > 0 {
			matched = append(matched, "interests: "+strings.Join(rec.MatchedInterests, ", "))
		}
		if len(matched) > 0 {
			fmt.Fprintf(out, "   %s\n", dim.Sprint(strings.Join(matched, " · ")))
		}
	}
}

// writeMetrics dumps everything in reg in the Prometheus text format.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	fmt.Fprintln(out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func printStatus(out io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(out, "%s %s\n", c.Sprint(symbol), message)
}
