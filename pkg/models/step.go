package models

// Step identifies a page of the profile wizard.
type Step int

const (
	// StepName collects the user's name.
	StepName Step = iota + 1
	// StepSkills collects current skills.
	StepSkills
	// StepInterests collects interests.
	StepInterests
	// StepGoals collects free-text career goals.
	StepGoals
	// StepSubmitted is terminal: the profile has been finalized.
	StepSubmitted
)

// FirstStep and LastStep bound the editable steps.
const (
	FirstStep = StepName
	LastStep  = StepGoals
)

// Valid returns true if the step is a known value.
func (s Step) Valid() bool {
	return s >= StepName && s <= StepSubmitted
}

// Editable returns true for the four input steps.
func (s Step) Editable() bool {
	return s >= FirstStep && s <= LastStep
}

// String returns a short label for the step.
func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepSkills:
		return "skills"
	case StepInterests:
		return "interests"
	case StepGoals:
		return "goals"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
