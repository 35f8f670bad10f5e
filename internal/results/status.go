package results

import (
	"errors"

	"github.com/ShayCichocki/careercraft/pkg/models"
)

var (
	// ErrBusy is returned by Submit while a request is in flight.
	ErrBusy = errors.New("a recommendation request is already in flight")
	// ErrNotIdle is returned by Submit when results or an error are still
	// displayed. Call Reset first.
	ErrNotIdle = errors.New("orchestrator is not idle")
)

// Phase is the orchestrator's lifecycle state.
type Phase int

const (
	// PhaseIdle means no request has been made since the last reset.
	PhaseIdle Phase = iota
	// PhaseLoading means exactly one request is in flight.
	PhaseLoading
	// PhaseSuccess means results are available.
	PhaseSuccess
	// PhaseError means the last request failed.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the orchestrator.
type Status struct {
	Phase Phase
	// Results is set only in PhaseSuccess. It is the service's return value,
	// unchanged.
	Results []models.Recommendation
	// Reason is set only in PhaseError.
	Reason string
	// Generation identifies the current request cycle.
	Generation uint64
}

// Loading reports whether a request is in flight.
func (s Status) Loading() bool {
	return s.Phase == PhaseLoading
}
