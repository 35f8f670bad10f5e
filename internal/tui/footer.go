package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Mode is what the main area is showing.
type Mode int

const (
	// ModeForm shows the profile wizard.
	ModeForm Mode = iota
	// ModeLoading shows the spinner while a request is in flight.
	ModeLoading
	// ModeResults shows the roadmap.
	ModeResults
	// ModeError shows the failure panel.
	ModeError
)

// Footer renders keyboard hints for the current mode and step.
type Footer struct {
	mode  Mode
	step  models.Step
	width int

	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMode sets the mode the hints describe.
func (f *Footer) SetMode(mode Mode, step models.Step) {
	f.mode = mode
	f.step = step
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer.
func (f *Footer) View() string {
	hints := f.keyboardHints()
	sep := f.separatorStyle.Render(" │ ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = f.hintStyle.Render(h)
	}
	return strings.Join(parts, sep)
}

// keyboardHints returns context-sensitive keyboard hints.
func (f *Footer) keyboardHints() []string {
	switch f.mode {
	case ModeLoading:
		return []string{"esc cancel", "ctrl+c quit"}
	case ModeResults, ModeError:
		return []string{"n start a new plan", "ctrl+c quit"}
	}

	var hints []string
	switch f.step {
	case models.StepName:
		hints = append(hints, "enter next")
	case models.StepSkills, models.StepInterests:
		hints = append(hints, "enter add / next", "←/→ select tag", "del remove")
	case models.StepGoals:
		hints = append(hints, "ctrl+s submit")
	}
	if f.step > models.FirstStep {
		hints = append(hints, "shift+tab back")
	}
	return append(hints, "ctrl+c quit")
}
