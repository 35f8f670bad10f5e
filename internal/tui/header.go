package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Header renders the title bar and step indicator.
type Header struct {
	width int
	step  models.Step
}

// NewHeader creates a new Header.
func NewHeader() *Header {
	return &Header{
		width: 80,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStep sets the step shown in the indicator. Steps outside the form
// hide it.
func (h *Header) SetStep(step models.Step) {
	h.step = step
}

// View renders the header.
func (h *Header) View() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4")).
		Bold(true).
		Render("CareerCraft AI")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true).
		Render("Personalized career roadmaps")

	lines := []string{title, subtitle}
	if h.step.Editable() {
		lines = append(lines, h.progress())
	}

	style := lipgloss.NewStyle().
		Width(h.width).
		Align(lipgloss.Center).
		MarginTop(1).
		PaddingBottom(1)

	return style.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// progress renders "● ● ○ ○  Step 2 of 4".
func (h *Header) progress() string {
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	todo := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	var dots string
	for s := models.FirstStep; s <= models.LastStep; s++ {
		if s <= h.step {
			dots += done.Render("●") + " "
		} else {
			dots += todo.Render("○") + " "
		}
	}

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(fmt.Sprintf(" Step %d of %d", int(h.step), int(models.LastStep)))

	return dots + label
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	if h.step.Editable() {
		return 5 // margin + title + subtitle + progress + padding
	}
	return 4
}
