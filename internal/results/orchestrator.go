// Package results sequences a finalized profile through a single
// asynchronous recommendation request: Idle → Loading → Success | Error,
// with Reset returning to Idle from any phase.
//
// Each request is tagged with a generation number. Reset and every new
// Submit advance the generation, and Complete drops any completion whose
// generation is not current, so a late response can never overwrite a
// newer state.
//
// Typical use from an event loop:
//
//	req, err := o.Submit(profile)
//	// elsewhere, possibly on another goroutine:
//	c := o.Execute(ctx, req)
//	// back on the event loop:
//	o.Complete(c)
package results

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShayCichocki/careercraft/internal/recommend"
	"github.com/ShayCichocki/careercraft/pkg/models"
)

// Request is a dispatched recommendation request.
type Request struct {
	ID         string
	Generation uint64
	Profile    models.UserProfile

	once       sync.Once
	completion Completion
}

// Completion is the outcome of executing a Request.
type Completion struct {
	RequestID  string
	Generation uint64
	Results    []models.Recommendation
	Err        error
	Duration   time.Duration
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds each service call. Zero means no bound beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = d
	}
}

// Orchestrator owns the result status for one user.
type Orchestrator struct {
	svc     recommend.Service
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.Mutex
	status Status
}

// New creates an idle Orchestrator.
func New(svc recommend.Service, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		svc:    svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Status returns a snapshot of the current state.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot()
}

func (o *Orchestrator) snapshot() Status {
	s := o.status
	if s.Results != nil {
		out := make([]models.Recommendation, len(s.Results))
		copy(out, s.Results)
		s.Results = out
	}
	return s
}

// Submit moves from Idle to Loading and returns the request to execute.
// It fails with ErrBusy while Loading and ErrNotIdle in Success or Error.
func (o *Orchestrator) Submit(profile models.UserProfile) (*Request, error) {
	if profile.IsZero() {
		return nil, fmt.Errorf("submit: %w", models.ErrInvalidProfile)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.status.Phase {
	case PhaseIdle:
	case PhaseLoading:
		o.logger.Warn("rejected submit while loading", zap.Uint64("generation", o.status.Generation))
		return nil, ErrBusy
	default:
		return nil, fmt.Errorf("%w: phase %s", ErrNotIdle, o.status.Phase)
	}

	o.status = Status{
		Phase:      PhaseLoading,
		Generation: o.status.Generation + 1,
	}

	req := &Request{
		ID:         uuid.New().String(),
		Generation: o.status.Generation,
		Profile:    profile,
	}

	o.logger.Info("recommendation request dispatched",
		zap.String("request_id", req.ID),
		zap.Uint64("generation", req.Generation),
		zap.Int("skills", len(profile.Skills())),
		zap.Int("interests", len(profile.Interests())),
	)

	return req, nil
}

// Execute calls the service once for req and returns the outcome. It does
// not touch orchestrator state; hand the result to Complete. Executing the
// same request again returns the first outcome without another call.
func (o *Orchestrator) Execute(ctx context.Context, req *Request) Completion {
	req.once.Do(func() {
		if o.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, o.timeout)
			defer cancel()
		}

		start := time.Now()
		recs, err := o.svc.GenerateRecommendations(ctx, req.Profile)
		req.completion = Completion{
			RequestID:  req.ID,
			Generation: req.Generation,
			Results:    recs,
			Err:        err,
			Duration:   time.Since(start),
		}
	})
	return req.completion
}

// Complete applies c if it belongs to the current generation and a
// request is still in flight. Returns false for stale completions.
func (o *Orchestrator) Complete(c Completion) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if c.Generation != o.status.Generation || o.status.Phase != PhaseLoading {
		o.logger.Info("discarded stale recommendation response",
			zap.String("request_id", c.RequestID),
			zap.Uint64("generation", c.Generation),
			zap.Uint64("current_generation", o.status.Generation),
			zap.Stringer("phase", o.status.Phase),
		)
		return false
	}

	if c.Err != nil {
		o.status = Status{
			Phase:      PhaseError,
			Reason:     c.Err.Error(),
			Generation: o.status.Generation,
		}
		o.logger.Warn("recommendation request failed",
			zap.String("request_id", c.RequestID),
			zap.Duration("duration", c.Duration),
			zap.Error(c.Err),
		)
		return true
	}

	o.status = Status{
		Phase:      PhaseSuccess,
		Results:    c.Results,
		Generation: o.status.Generation,
	}
	o.logger.Info("recommendation request succeeded",
		zap.String("request_id", c.RequestID),
		zap.Duration("duration", c.Duration),
		zap.Int("results", len(c.Results)),
	)
	return true
}

// Reset returns to Idle and invalidates any in-flight request. The request
// itself is not aborted; its completion will be discarded.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status.Phase == PhaseLoading {
		o.logger.Info("reset while loading; pending response will be discarded",
			zap.Uint64("generation", o.status.Generation))
	}
	o.status = Status{
		Phase:      PhaseIdle,
		Generation: o.status.Generation + 1,
	}
}

// Run submits profile, waits for the service, and applies the outcome.
// It is meant for callers without an event loop. The returned error is a
// submit error; service failures are reported in the Status.
func (o *Orchestrator) Run(ctx context.Context, profile models.UserProfile) (Status, error) {
	req, err := o.Submit(profile)
	if err != nil {
		return o.Status(), err
	}
	o.Complete(o.Execute(ctx, req))
	return o.Status(), nil
}
