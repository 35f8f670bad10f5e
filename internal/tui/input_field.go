package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TagInput is a text input that shows already collected tags as chips
// above the prompt. The tags themselves live in the wizard; TagInput only
// tracks which chip, if any, is selected for removal.
type TagInput struct {
	input    textinput.Model
	width    int
	selected int // chip index, -1 when the text input is active

	chipStyle     lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewTagInput creates a new TagInput.
func NewTagInput() *TagInput {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 60

	chip := lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("30")).
		Padding(0, 1).
		MarginRight(1)

	return &TagInput{
		input:         ti,
		width:         80,
		selected:      -1,
		chipStyle:     chip,
		selectedStyle: chip.Background(lipgloss.Color("196")).Bold(true),
	}
}

// SetPlaceholder sets the placeholder shown when the input is empty.
func (f *TagInput) SetPlaceholder(p string) {
	f.input.Placeholder = p
}

// SetWidth sets the width of the input field.
func (f *TagInput) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 6 // prompt, border and padding
}

// Value returns the pending text.
func (f *TagInput) Value() string {
	return f.input.Value()
}

// Empty reports whether the pending text is blank.
func (f *TagInput) Empty() bool {
	return strings.TrimSpace(f.input.Value()) == ""
}

// Reset clears the pending text and the chip selection.
func (f *TagInput) Reset() {
	f.input.Reset()
	f.selected = -1
}

// Selected returns the selected chip index, or -1.
func (f *TagInput) Selected() int {
	return f.selected
}

// SelectPrev moves the selection one chip left, starting from the last of
// n chips.
func (f *TagInput) SelectPrev(n int) {
	switch {
	case n == 0:
		f.selected = -1
	case f.selected < 0:
		f.selected = n - 1
	case f.selected > 0:
		f.selected--
	}
}

// SelectNext moves the selection one chip right. Moving past the last of
// n chips returns to the text input.
func (f *TagInput) SelectNext(n int) {
	if f.selected < 0 {
		return
	}
	f.selected++
	if f.selected >= n {
		f.selected = -1
	}
}

// ClearSelection returns to the text input.
func (f *TagInput) ClearSelection() {
	f.selected = -1
}

// Clamp keeps the selection valid after the list shrank to n chips.
func (f *TagInput) Clamp(n int) {
	if f.selected >= n {
		f.selected = n - 1
	}
}

// Update handles messages for the input field.
func (f *TagInput) Update(msg tea.Msg) (*TagInput, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the chips and the input box.
func (f *TagInput) View(tags []string) string {
	var chips []string
	for i, t := range tags {
		if i == f.selected {
			chips = append(chips, f.selectedStyle.Render("✗ "+t))
		} else {
			chips = append(chips, f.chipStyle.Render(t))
		}
	}

	box := inputBox(f.width).Render(promptStyle.Render("+ ") + f.input.View())
	if len(chips) == 0 {
		return box
	}

	row := lipgloss.NewStyle().Width(f.width).Render(strings.Join(chips, ""))
	return lipgloss.JoinVertical(lipgloss.Left, row, box)
}

// Focus sets focus on the input field.
func (f *TagInput) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input field.
func (f *TagInput) Blur() {
	f.input.Blur()
}

var promptStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("39")).
	Bold(true)

func inputBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(width - 2)
}
