package wizard

import (
	"errors"
	"fmt"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

// ErrInvalidTransition is returned when an event is not valid for the
// current step, such as Next on the goals step or any navigation after
// the profile has been submitted.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Validation messages shown to the user when a step guard fails.
const (
	MsgNameRequired     = "Please enter your name."
	MsgSkillRequired    = "Please add at least one skill."
	MsgInterestRequired = "Please add at least one interest."
	MsgGoalsTooShort    = "Please describe your goals in more detail."
)

// ValidationError reports a failed step guard. It is recoverable: the
// wizard stays on Step and records Message as its error message.
type ValidationError struct {
	Step    models.Step
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s step: %s", e.Step, e.Message)
}
