package parley

import (
	"log/slog"

	"github.com/aretw0/parley/internal/runtime"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Version is stamped by the release workflow; "dev" for local builds.
var Version = "dev"

// Step is re-exported so callers can define sessions without importing the
// ports package directly.
type Step = ports.Step

// Result is the finalized session record.
type Result = domain.Result

// Session is the high-level entry point for the library. It wraps the
// internal orchestrator and exposes the event-loop contract consumed by
// pkg/runner (or by a custom host loop).
type Session struct {
	core   *runtime.Session
	name   string
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithName labels the session; the runner shows it as the frame title.
func WithName(name string) Option {
	return func(s *Session) { s.name = name }
}

// WithLogger sets a structured logger for orchestrator events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New validates the step definitions and builds a session.
func New(steps []Step, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	var coreOpts []runtime.Option
	if s.logger != nil {
		coreOpts = append(coreOpts, runtime.WithLogger(s.logger))
	}

	core, err := runtime.NewSession(steps, coreOpts...)
	if err != nil {
		return nil, err
	}
	s.core = core
	return s, nil
}

// Name returns the session label.
func (s *Session) Name() string { return s.name }

// Start activates the first runnable step.
func (s *Session) Start() error { return s.core.Start() }

// Dispatch feeds one key event through the orchestrator.
func (s *Session) Dispatch(ev domain.KeyEvent) (domain.Action, error) {
	return s.core.Dispatch(ev)
}

// Running reports whether the session still wants input.
func (s *Session) Running() bool { return s.core.Running() }

// Status returns the session status.
func (s *Session) Status() domain.SessionStatus { return s.core.Status() }

// ActiveID returns the id of the active step, or "".
func (s *Session) ActiveID() string { return s.core.ActiveID() }

// Frame returns the completed step summaries and the active prompt's view.
func (s *Session) Frame() ([]domain.StepView, *domain.ViewModel) {
	return s.core.Frame()
}

// Result finalizes the session record.
func (s *Session) Result() Result { return s.core.Result() }
