package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Roadmap renders the results and error panels.
type Roadmap struct {
	width int

	titleStyle   lipgloss.Style
	cardStyle    lipgloss.Style
	nameStyle    lipgloss.Style
	summaryStyle lipgloss.Style
	matchStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	buttonStyle  lipgloss.Style
}

// NewRoadmap creates a new Roadmap.
func NewRoadmap() *Roadmap {
	return &Roadmap{
		width: 80,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96E6A1")).
			Bold(true).
			MarginBottom(1),

		cardStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),

		nameStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),

		summaryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		matchStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true),

		errorStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1),

		buttonStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 2).
			MarginTop(1),
	}
}

// SetWidth sets the panel width.
func (r *Roadmap) SetWidth(width int) {
	r.width = width
}

// Headline returns the results title for name.
func Headline(name string) string {
	return fmt.Sprintf("Your Personalized Roadmap, %s!", name)
}

// ResultsView renders recs for the named user.
func (r *Roadmap) ResultsView(name string, recs []models.Recommendation) string {
	lines := []string{r.titleStyle.Render(Headline(name))}

	if len(recs) == 0 {
		lines = append(lines, r.matchStyle.Render("No matching roles yet. Try adding more skills or interests."))
	}

	cardWidth := r.width - 4
	for i, rec := range recs {
		var body strings.Builder
		body.WriteString(r.nameStyle.Render(fmt.Sprintf("%d. %s", i+1, rec.Title)))
		if rec.Summary != "" {
			body.WriteString("\n" + r.summaryStyle.Render(rec.Summary))
		}
		if m := matches(rec); m != "" {
			body.WriteString("\n" + r.matchStyle.Render(m))
		}
		lines = append(lines, r.cardStyle.Width(cardWidth).Render(body.String()))
	}

	lines = append(lines, r.buttonStyle.Render("Start a New Plan"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ErrorView renders the failure panel for reason.
func (r *Roadmap) ErrorView(reason string) string {
	panel := r.errorStyle.Width(r.width - 4).Render(
		"We couldn't build your roadmap.\n" + reason,
	)
	return lipgloss.JoinVertical(lipgloss.Left, panel, r.buttonStyle.Render("Start a New Plan"))
}

func matches(rec models.Recommendation) string {
	var parts []string
	if len(rec.MatchedSkills) > 0 {
		parts = append(parts, "skills: "+strings.Join(rec.MatchedSkills, ", "))
	}
	if len(rec.MatchedInterests) > 0 {
		parts = append(parts, "interests: "+strings.Join(rec.MatchedInterests, ", "))
	}
	return strings.Join(parts, " · ")
}
