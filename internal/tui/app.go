package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ShayCichocki/careercraft/internal/results"
	"github.com/ShayCichocki/careercraft/internal/wizard"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

// completionMsg carries a finished service call back into Update.
type completionMsg struct {
	Completion results.Completion
}

// stepPrompts are the questions shown above each form step.
var stepPrompts = map[models.Step]string{
	models.StepName:      "What's your name?",
	models.StepSkills:    "What are your current skills?",
	models.StepInterests: "What are your interests?",
	models.StepGoals:     "What are your career goals?",
}

// LoadingText is shown next to the spinner while a request is in flight.
const LoadingText = "Analyzing Your Profile..."

// App is the root model. All wizard and orchestrator transitions happen
// on its Update goroutine; only the service call runs in a command.
type App struct {
	ctx    context.Context
	wizard *wizard.Controller
	orch   *results.Orchestrator
	logger *zap.Logger

	header  *Header
	footer  *Footer
	roadmap *Roadmap

	nameInput textinput.Model
	tagInput  *TagInput
	goals     textarea.Model
	spinner   spinner.Model

	// submitErr holds an orchestrator rejection; it is shown like a
	// service failure until the next reset.
	submitErr string

	width    int
	height   int
	quitting bool
}

// NewApp creates an App over wiz and orch. ctx bounds every service call.
func NewApp(ctx context.Context, wiz *wizard.Controller, orch *results.Orchestrator, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	name := textinput.New()
	name.Placeholder = "Ada Lovelace"
	name.CharLimit = 80
	name.Width = 60

	goals := textarea.New()
	goals.Placeholder = "Where do you want to be in a few years?"
	goals.ShowLineNumbers = false
	goals.CharLimit = 1000
	goals.SetHeight(4)
	goals.SetWidth(60)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	a := &App{
		ctx:       ctx,
		wizard:    wiz,
		orch:      orch,
		logger:    logger,
		header:    NewHeader(),
		footer:    NewFooter(),
		roadmap:   NewRoadmap(),
		nameInput: name,
		tagInput:  NewTagInput(),
		goals:     goals,
		spinner:   sp,
		width:     80,
	}
	a.focusStep()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns what the main area is currently showing.
func (a *App) Mode() Mode {
	if a.submitErr != "" {
		return ModeError
	}
	switch a.orch.Status().Phase {
	case results.PhaseLoading:
		return ModeLoading
	case results.PhaseSuccess:
		return ModeResults
	case results.PhaseError:
		return ModeError
	default:
		return ModeForm
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		switch a.Mode() {
		case ModeLoading:
			if msg.String() == "esc" {
				a.logger.Info("request abandoned by user")
				return a, a.reset()
			}
			return a, nil
		case ModeResults, ModeError:
			switch msg.String() {
			case "n", "enter":
				return a, a.reset()
			}
			return a, nil
		}
		return a, a.updateForm(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case completionMsg:
		a.orch.Complete(msg.Completion)
		return a, nil

	case spinner.TickMsg:
		if a.Mode() != ModeLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, a.forward(msg)
}

// updateForm handles keys while the wizard is showing.
func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	step := a.wizard.Step()

	switch msg.String() {
	case "shift+tab":
		a.syncDraft()
		a.wizard.Back()
		return a.focusStep()

	case "ctrl+s":
		if step != models.StepGoals {
			return nil
		}
		return a.submit()

	case "enter":
		switch step {
		case models.StepName:
			a.syncDraft()
			return a.next()
		case models.StepSkills, models.StepInterests:
			if a.tagInput.Empty() {
				a.tagInput.Reset()
				return a.next()
			}
			a.addTag(step, a.tagInput.Value())
			a.tagInput.Reset()
			return nil
		}
	}

	if step == models.StepSkills || step == models.StepInterests {
		if handled := a.updateChips(msg); handled {
			return nil
		}
	}

	cmd := a.forward(msg)
	a.syncDraft()
	return cmd
}

// forward sends msg to the input that owns the current step.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	if a.Mode() != ModeForm {
		return nil
	}

	var cmd tea.Cmd
	switch a.wizard.Step() {
	case models.StepName:
		a.nameInput, cmd = a.nameInput.Update(msg)
	case models.StepSkills, models.StepInterests:
		a.tagInput, cmd = a.tagInput.Update(msg)
	case models.StepGoals:
		a.goals, cmd = a.goals.Update(msg)
	}
	return cmd
}

// syncDraft copies the free-text inputs into the wizard draft.
func (a *App) syncDraft() {
	switch a.wizard.Step() {
	case models.StepName:
		a.wizard.SetName(a.nameInput.Value())
	case models.StepGoals:
		a.wizard.SetGoals(a.goals.Value())
	}
}

func (a *App) addTag(step models.Step, raw string) {
	if step == models.StepSkills {
		a.wizard.AddSkill(raw)
	} else {
		a.wizard.AddInterest(raw)
	}
}

// updateChips handles chip selection keys on the tag steps. With the
// text input empty, left selects chips; delete or backspace removes the
// selected chip, or the last one when none is selected.
func (a *App) updateChips(msg tea.KeyMsg) bool {
	tags := a.currentTags()
	typing := a.tagInput.Value() != ""

	switch msg.String() {
	case "left":
		if typing || len(tags) == 0 {
			return false
		}
		a.tagInput.SelectPrev(len(tags))
		return true

	case "right":
		if a.tagInput.Selected() < 0 {
			return false
		}
		a.tagInput.SelectNext(len(tags))
		return true

	case "delete", "backspace":
		if i := a.tagInput.Selected(); i >= 0 && i < len(tags) {
			a.removeTag(tags[i])
			a.tagInput.Clamp(len(tags) - 1)
			return true
		}
		if msg.String() == "backspace" && !typing {
			if tag, ok := a.wizard.RemoveLastTag(); ok {
				a.logger.Debug("tag removed", zap.String("kind", a.wizard.TagLabel()), zap.String("tag", tag))
			}
			return true
		}
		return false
	}

	a.tagInput.ClearSelection()
	return false
}

func (a *App) currentTags() []string {
	if a.wizard.Step() == models.StepSkills {
		return a.wizard.Skills()
	}
	return a.wizard.Interests()
}

func (a *App) removeTag(tag string) {
	var removed bool
	if a.wizard.Step() == models.StepSkills {
		removed = a.wizard.RemoveSkill(tag)
	} else {
		removed = a.wizard.RemoveInterest(tag)
	}
	if removed {
		a.logger.Debug("tag removed", zap.String("kind", a.wizard.TagLabel()), zap.String("tag", tag))
	}
}

func (a *App) next() tea.Cmd {
	if err := a.wizard.Next(); err != nil {
		a.logger.Debug("wizard step rejected", zap.Stringer("step", a.wizard.Step()), zap.Error(err))
		return nil
	}
	return a.focusStep()
}

// submit validates the draft and dispatches the service call.
func (a *App) submit() tea.Cmd {
	a.syncDraft()

	profile, err := a.wizard.Submit()
	if err != nil {
		a.logger.Debug("wizard submit rejected", zap.Error(err))
		return a.focusStep()
	}

	req, err := a.orch.Submit(profile)
	if err != nil {
		a.logger.Warn("orchestrator rejected submit", zap.Error(err))
		a.submitErr = err.Error()
		return nil
	}

	a.blurAll()
	ctx := a.ctx
	orch := a.orch
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		return completionMsg{Completion: orch.Execute(ctx, req)}
	})
}

// reset starts a new plan: it clears the wizard, the inputs and the
// results together.
func (a *App) reset() tea.Cmd {
	a.orch.Reset()
	a.wizard.Reset()
	a.submitErr = ""
	a.nameInput.Reset()
	a.tagInput.Reset()
	a.goals.Reset()
	return a.focusStep()
}

// focusStep focuses the input for the current step.
func (a *App) focusStep() tea.Cmd {
	a.blurAll()
	switch a.wizard.Step() {
	case models.StepName:
		return a.nameInput.Focus()
	case models.StepSkills:
		a.tagInput.Reset()
		a.tagInput.SetPlaceholder("Go, SQL, public speaking...")
		return a.tagInput.Focus()
	case models.StepInterests:
		a.tagInput.Reset()
		a.tagInput.SetPlaceholder("open source, design, teaching...")
		return a.tagInput.Focus()
	case models.StepGoals:
		return a.goals.Focus()
	}
	return nil
}

func (a *App) blurAll() {
	a.nameInput.Blur()
	a.tagInput.Blur()
	a.goals.Blur()
}

// updateSizes updates the sizes of child components based on terminal size.
func (a *App) updateSizes() {
	contentWidth := a.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	a.header.SetWidth(a.width)
	a.footer.SetWidth(a.width)
	a.roadmap.SetWidth(contentWidth)
	a.tagInput.SetWidth(contentWidth)
	a.nameInput.Width = contentWidth - 6
	a.goals.SetWidth(contentWidth - 4)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}

	mode := a.Mode()
	step := a.wizard.Step()
	if mode != ModeForm {
		step = 0
	}
	a.header.SetStep(step)
	a.footer.SetMode(mode, a.wizard.Step())

	var body string
	switch mode {
	case ModeLoading:
		body = a.spinner.View() + " " + LoadingText
	case ModeResults:
		body = a.roadmap.ResultsView(a.wizard.Profile().Name(), a.orch.Status().Results)
	case ModeError:
		reason := a.submitErr
		if reason == "" {
			reason = a.orch.Status().Reason
		}
		body = a.roadmap.ErrorView(reason)
	default:
		body = a.formView()
	}

	content := lipgloss.NewStyle().Padding(0, 2).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, a.header.View(), content, "", "  "+a.footer.View())
}

func (a *App) formView() string {
	step := a.wizard.Step()
	question := lipgloss.NewStyle().Bold(true).MarginBottom(1).Render(stepPrompts[step])

	var field string
	switch step {
	case models.StepName:
		field = inputBox(a.width-4).Render(promptStyle.Render("> ") + a.nameInput.View())
	case models.StepSkills, models.StepInterests:
		field = a.tagInput.View(a.currentTags())
		if a.tagInput.Selected() >= 0 {
			field = lipgloss.JoinVertical(lipgloss.Left, field,
				selectHintStyle.Render(fmt.Sprintf("delete removes this %s, → moves on", a.wizard.TagLabel())))
		}
	case models.StepGoals:
		field = inputBox(a.width - 4).Render(a.goals.View())
	}

	lines := []string{question, field}
	if msg := a.wizard.ErrorMessage(); msg != "" {
		lines = append(lines, errorLineStyle.Render("✗ "+msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var selectHintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("243")).
	Italic(true)

var errorLineStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	MarginTop(1)

// NewProgram creates the Bubbletea program for app.
func NewProgram(app *App, altScreen bool) *tea.Program {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return tea.NewProgram(app, opts...)
}
