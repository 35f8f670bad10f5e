package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShayCichocki/careercraft/internal/recommend"
	"github.com/ShayCichocki/careercraft/internal/results"
	"github.com/ShayCichocki/careercraft/internal/wizard"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

const validGoals = "Lead a platform team building developer tools"

func newTestApp(svc recommend.Service) *App {
	return NewApp(context.Background(), wizard.New(), results.New(svc), nil)
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(a *App, k tea.KeyType) tea.Cmd {
	_, cmd := a.Update(tea.KeyMsg{Type: k})
	return cmd
}

// collect runs cmd and any batched commands, returning the messages they
// produce. Blink and tick commands are skipped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func completionFrom(t *testing.T, cmd tea.Cmd) completionMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if c, ok := msg.(completionMsg); ok {
			return c
		}
	}
	t.Fatal("no completion produced by command")
	return completionMsg{}
}

// fillForm drives the app to the goals step with a valid draft.
func fillForm(t *testing.T, a *App) {
	t.Helper()
	typeText(a, "Ada")
	press(a, tea.KeyEnter)
	typeText(a, "Go")
	press(a, tea.KeyEnter)
	press(a, tea.KeyEnter)
	typeText(a, "teaching")
	press(a, tea.KeyEnter)
	press(a, tea.KeyEnter)
	typeText(a, validGoals)

	if a.wizard.Step() != models.StepGoals {
		t.Fatalf("expected goals step, got %v (error %q)", a.wizard.Step(), a.wizard.ErrorMessage())
	}
}

func TestApp_InitialState(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))

	if a.Mode() != ModeForm {
		t.Errorf("Mode() = %v, want ModeForm", a.Mode())
	}
	if a.Init() == nil {
		t.Error("Init should return a blink command")
	}
	view := a.View()
	for _, want := range []string{"CareerCraft AI", "What's your name?", "Step 1 of 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_EmptyNameShowsError(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))

	press(a, tea.KeyEnter)

	if a.wizard.Step() != models.StepName {
		t.Errorf("step = %v, want name", a.wizard.Step())
	}
	if !strings.Contains(a.View(), wizard.MsgNameRequired) {
		t.Error("view should show the name error")
	}
}

func TestApp_TagEntry(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")
	press(a, tea.KeyEnter)

	// Empty input moves on only when a skill exists.
	press(a, tea.KeyEnter)
	if a.wizard.Step() != models.StepSkills {
		t.Fatalf("advanced without skills")
	}
	if a.wizard.ErrorMessage() != wizard.MsgSkillRequired {
		t.Errorf("ErrorMessage() = %q", a.wizard.ErrorMessage())
	}

	typeText(a, "Go")
	press(a, tea.KeyEnter)
	typeText(a, "SQL")
	press(a, tea.KeyEnter)
	typeText(a, "go")
	press(a, tea.KeyEnter)

	if got := a.wizard.Skills(); len(got) != 2 || got[0] != "Go" || got[1] != "SQL" {
		t.Errorf("Skills() = %v, want [Go SQL]", got)
	}

	press(a, tea.KeyBackspace)
	if got := a.wizard.Skills(); len(got) != 1 || got[0] != "Go" {
		t.Errorf("backspace on empty input should remove last tag, got %v", got)
	}

	view := a.View()
	if !strings.Contains(view, "What are your current skills?") || !strings.Contains(view, "Go") {
		t.Error("view should show the skills prompt and chip")
	}
}

func TestApp_BackKeepsDraft(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")
	press(a, tea.KeyEnter)

	press(a, tea.KeyShiftTab)
	if a.wizard.Step() != models.StepName {
		t.Fatalf("step = %v, want name", a.wizard.Step())
	}
	if a.nameInput.Value() != "Ada" {
		t.Errorf("name input = %q, want Ada", a.nameInput.Value())
	}

	press(a, tea.KeyShiftTab)
	if a.wizard.Step() != models.StepName {
		t.Error("back at the first step should be a no-op")
	}
}

func TestApp_SubmitShortGoals(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	fillForm(t, a)

	a.goals.Reset()
	typeText(a, "short")
	press(a, tea.KeyCtrlS)

	if a.Mode() != ModeForm {
		t.Fatalf("Mode() = %v, want ModeForm", a.Mode())
	}
	if a.wizard.ErrorMessage() != wizard.MsgGoalsTooShort {
		t.Errorf("ErrorMessage() = %q", a.wizard.ErrorMessage())
	}
}

func TestApp_CtrlSIgnoredBeforeGoals(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")

	if cmd := press(a, tea.KeyCtrlS); cmd != nil {
		t.Error("ctrl+s before the goals step should do nothing")
	}
	if a.wizard.Step() != models.StepName || a.Mode() != ModeForm {
		t.Error("state should be unchanged")
	}
}

func TestApp_SubmitAndShowResults(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	fillForm(t, a)

	cmd := press(a, tea.KeyCtrlS)
	if a.Mode() != ModeLoading {
		t.Fatalf("Mode() = %v, want ModeLoading", a.Mode())
	}
	if !strings.Contains(a.View(), LoadingText) {
		t.Error("loading view should show the spinner text")
	}

	// Keys other than esc are ignored while loading.
	press(a, tea.KeyCtrlS)
	typeText(a, "n")
	if a.Mode() != ModeLoading {
		t.Fatal("keys while loading should be ignored")
	}

	a.Update(completionFrom(t, cmd))

	if a.Mode() != ModeResults {
		t.Fatalf("Mode() = %v, want ModeResults", a.Mode())
	}
	view := a.View()
	for _, want := range []string{"Your Personalized Roadmap, Ada!", "Frontend Developer", "Start a New Plan"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestApp_ServiceErrorAndNewPlan(t *testing.T) {
	svc := recommend.ServiceFunc(func(ctx context.Context, p models.UserProfile) ([]models.Recommendation, error) {
		return nil, errors.New("upstream unavailable")
	})
	a := newTestApp(svc)
	fillForm(t, a)

	cmd := press(a, tea.KeyCtrlS)
	a.Update(completionFrom(t, cmd))

	if a.Mode() != ModeError {
		t.Fatalf("Mode() = %v, want ModeError", a.Mode())
	}
	if !strings.Contains(a.View(), "upstream unavailable") {
		t.Error("error view should show the reason")
	}

	typeText(a, "n")

	if a.Mode() != ModeForm {
		t.Fatalf("Mode() = %v, want ModeForm", a.Mode())
	}
	if a.wizard.Step() != models.StepName {
		t.Errorf("step = %v, want name", a.wizard.Step())
	}
	if a.nameInput.Value() != "" || a.goals.Value() != "" {
		t.Error("inputs should be cleared on a new plan")
	}
	if len(a.wizard.Skills()) != 0 {
		t.Error("skills should be cleared on a new plan")
	}
}

func TestApp_EscWhileLoadingDropsLateResponse(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	fillForm(t, a)

	cmd := press(a, tea.KeyCtrlS)
	press(a, tea.KeyEsc)

	if a.Mode() != ModeForm || a.wizard.Step() != models.StepName {
		t.Fatalf("esc while loading should reset to the form")
	}

	a.Update(completionFrom(t, cmd))

	if a.Mode() != ModeForm {
		t.Errorf("stale completion changed mode to %v", a.Mode())
	}
	if a.orch.Status().Results != nil {
		t.Error("stale results should be discarded")
	}
}

func TestApp_CtrlC(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if !model.(*App).quitting {
		t.Error("quitting should be true after Ctrl+C")
	}
	if cmd == nil {
		t.Error("Expected quit command")
	}
	if a.View() != "Goodbye!\n" {
		t.Errorf("View() = %q", a.View())
	}
}

func TestApp_WindowSize(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))

	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if a.width != 120 || a.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", a.width, a.height)
	}
	if a.header.width != 120 {
		t.Errorf("header width = %d, want 120", a.header.width)
	}
}

func TestApp_RemoveSelectedChip(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")
	press(a, tea.KeyEnter)
	for _, s := range []string{"Go", "SQL", "Rust"} {
		typeText(a, s)
		press(a, tea.KeyEnter)
	}

	// left twice selects the middle chip.
	press(a, tea.KeyLeft)
	press(a, tea.KeyLeft)
	if a.tagInput.Selected() != 1 {
		t.Fatalf("Selected() = %d, want 1", a.tagInput.Selected())
	}
	if !strings.Contains(a.View(), "delete removes this skill") {
		t.Error("view should explain how to remove the selected skill")
	}

	press(a, tea.KeyDelete)
	if got := a.wizard.Skills(); len(got) != 2 || got[0] != "Go" || got[1] != "Rust" {
		t.Fatalf("Skills() = %v, want [Go Rust]", got)
	}
	if a.tagInput.Selected() != 1 {
		t.Errorf("selection should stay on the next chip, got %d", a.tagInput.Selected())
	}

	// backspace removes the selected chip too.
	press(a, tea.KeyBackspace)
	if got := a.wizard.Skills(); len(got) != 1 || got[0] != "Go" {
		t.Fatalf("Skills() = %v, want [Go]", got)
	}
	if a.tagInput.Selected() != 0 {
		t.Errorf("selection should clamp to the last chip, got %d", a.tagInput.Selected())
	}

	// right past the last chip returns to the input.
	press(a, tea.KeyRight)
	if a.tagInput.Selected() != -1 {
		t.Errorf("Selected() = %d, want -1", a.tagInput.Selected())
	}
}

func TestApp_RemoveFirstInterestChip(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")
	press(a, tea.KeyEnter)
	typeText(a, "Go")
	press(a, tea.KeyEnter)
	press(a, tea.KeyEnter)
	for _, s := range []string{"teaching", "design"} {
		typeText(a, s)
		press(a, tea.KeyEnter)
	}

	press(a, tea.KeyLeft)
	press(a, tea.KeyLeft)
	press(a, tea.KeyLeft) // stays on the first chip
	if a.tagInput.Selected() != 0 {
		t.Fatalf("Selected() = %d, want 0", a.tagInput.Selected())
	}

	press(a, tea.KeyDelete)
	if got := a.wizard.Interests(); len(got) != 1 || got[0] != "design" {
		t.Errorf("Interests() = %v, want [design]", got)
	}
}

func TestApp_TypingClearsChipSelection(t *testing.T) {
	a := newTestApp(recommend.NewStatic(0))
	typeText(a, "Ada")
	press(a, tea.KeyEnter)
	typeText(a, "Go")
	press(a, tea.KeyEnter)

	press(a, tea.KeyLeft)
	typeText(a, "S")

	if a.tagInput.Selected() != -1 {
		t.Errorf("typing should return to the input, Selected() = %d", a.tagInput.Selected())
	}
	if a.tagInput.Value() != "S" {
		t.Errorf("input = %q, want S", a.tagInput.Value())
	}
	if got := a.wizard.Skills(); len(got) != 1 {
		t.Errorf("Skills() = %v, want one tag", got)
	}
}
