// Package wizard implements the four-step profile form as a finite state
// machine. Each forward transition validates only the step being left;
// edits update the draft without validation.
//
//	name ──next──► skills ──next──► interests ──next──► goals ──submit──► submitted
//	  ◄───back────   ◄─────back─────    ◄──────back───────
package wizard

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/careercraft/internal/tags"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Draft is the in-progress profile held before submission.
type Draft struct {
	Name      string
	Skills    []string
	Interests []string
	Goals     string
}

// State is a snapshot of the wizard.
type State struct {
	Step         models.Step
	Draft        Draft
	ErrorMessage string
}

// Controller drives the profile wizard.
type Controller struct {
	step      models.Step
	name      string
	skills    *tags.Collector
	interests *tags.Collector
	goals     string
	errMsg    string
	profile   models.UserProfile
}

// New creates a Controller at the first step with an empty draft.
func New() *Controller {
	return &Controller{
		step:      models.FirstStep,
		skills:    tags.New("skill"),
		interests: tags.New("interest"),
	}
}

// Step returns the current step.
func (c *Controller) Step() models.Step {
	return c.step
}

// ErrorMessage returns the current validation message, or "".
func (c *Controller) ErrorMessage() string {
	return c.errMsg
}

// Submitted reports whether the profile has been finalized.
func (c *Controller) Submitted() bool {
	return c.step == models.StepSubmitted
}

// Profile returns the finalized profile. It is the zero profile until
// Submit succeeds.
func (c *Controller) Profile() models.UserProfile {
	return c.profile
}

// State returns a snapshot of the wizard.
func (c *Controller) State() State {
	return State{
		Step: c.step,
		Draft: Draft{
			Name:      c.name,
			Skills:    c.skills.Tags(),
			Interests: c.interests.Tags(),
			Goals:     c.goals,
		},
		ErrorMessage: c.errMsg,
	}
}

// Skills returns a copy of the skill tags. Mutate through AddSkill and
// RemoveSkill.
func (c *Controller) Skills() []string {
	return c.skills.Tags()
}

// Interests returns a copy of the interest tags.
func (c *Controller) Interests() []string {
	return c.interests.Tags()
}

// SetName updates the draft name.
func (c *Controller) SetName(name string) {
	if c.editable() {
		c.name = name
	}
}

// SetGoals updates the draft goals.
func (c *Controller) SetGoals(goals string) {
	if c.editable() {
		c.goals = goals
	}
}

// AddSkill adds a skill tag. Returns true if the list changed.
func (c *Controller) AddSkill(raw string) bool {
	return c.editable() && c.skills.Add(raw)
}

// RemoveSkill removes a skill tag. Returns true if the list changed.
func (c *Controller) RemoveSkill(tag string) bool {
	return c.editable() && c.skills.Remove(tag)
}

// AddInterest adds an interest tag. Returns true if the list changed.
func (c *Controller) AddInterest(raw string) bool {
	return c.editable() && c.interests.Add(raw)
}

// RemoveInterest removes an interest tag. Returns true if the list changed.
func (c *Controller) RemoveInterest(tag string) bool {
	return c.editable() && c.interests.Remove(tag)
}

// TagLabel returns "skill" or "interest" on the tag steps, "" elsewhere.
func (c *Controller) TagLabel() string {
	if tc := c.currentTags(); tc != nil {
		return tc.Label()
	}
	return ""
}

// RemoveLastTag removes the most recent tag of the current tag step and
// returns it. ok is false off the tag steps or when the list is empty.
func (c *Controller) RemoveLastTag() (tag string, ok bool) {
	tc := c.currentTags()
	if tc == nil || tc.Len() == 0 {
		return "", false
	}
	tag = tc.Last()
	return tag, tc.Remove(tag)
}

// Next validates the current step and advances. On a failed guard it
// records the message, stays put, and returns a *ValidationError.
func (c *Controller) Next() error {
	if c.step < models.FirstStep || c.step >= models.LastStep {
		return fmt.Errorf("%w: next from %s step", ErrInvalidTransition, c.step)
	}
	if msg := c.check(c.step); msg != "" {
		return c.fail(msg)
	}
	c.errMsg = ""
	c.step++
	return nil
}

// Back returns to the previous step and clears any error.
// It is a no-op on the first step and after submission.
func (c *Controller) Back() {
	if c.step <= models.FirstStep || !c.editable() {
		return
	}
	c.errMsg = ""
	c.step--
}

// Submit validates the goals step and finalizes the profile.
func (c *Controller) Submit() (models.UserProfile, error) {
	if c.step != models.LastStep {
		return models.UserProfile{}, fmt.Errorf("%w: submit from %s step", ErrInvalidTransition, c.step)
	}
	if msg := c.check(c.step); msg != "" {
		return models.UserProfile{}, c.fail(msg)
	}

	profile, err := models.NewUserProfile(c.name, c.skills.Tags(), c.interests.Tags(), c.goals)
	if err != nil {
		// Earlier guards can only be bypassed by editing a previous step's
		// field while on the goals step.
		return models.UserProfile{}, c.fail(c.firstFailingMessage())
	}

	c.errMsg = ""
	c.step = models.StepSubmitted
	c.profile = profile
	return profile, nil
}

// Reset returns the wizard to its initial state.
func (c *Controller) Reset() {
	c.step = models.FirstStep
	c.name = ""
	c.goals = ""
	c.errMsg = ""
	c.skills.Reset()
	c.interests.Reset()
	c.profile = models.UserProfile{}
}

// currentTags returns the collector edited on the current step, or nil.
func (c *Controller) currentTags() *tags.Collector {
	switch c.step {
	case models.StepSkills:
		return c.skills
	case models.StepInterests:
		return c.interests
	}
	return nil
}

func (c *Controller) editable() bool {
	return c.step.Editable()
}

func (c *Controller) fail(msg string) error {
	c.errMsg = msg
	return &ValidationError{Step: c.step, Message: msg}
}

// check returns the validation message for step, or "" if its guard holds.
func (c *Controller) check(step models.Step) string {
	switch step {
	case models.StepName:
		if strings.TrimSpace(c.name) == "" {
			return MsgNameRequired
		}
	case models.StepSkills:
		if c.skills.Len() == 0 {
			return MsgSkillRequired
		}
	case models.StepInterests:
		if c.interests.Len() == 0 {
			return MsgInterestRequired
		}
	case models.StepGoals:
		if !models.GoalsDetailed(c.goals) {
			return MsgGoalsTooShort
		}
	}
	return ""
}

func (c *Controller) firstFailingMessage() string {
	for s := models.FirstStep; s <= models.LastStep; s++ {
		if msg := c.check(s); msg != "" {
			return msg
		}
	}
	return MsgGoalsTooShort
}
