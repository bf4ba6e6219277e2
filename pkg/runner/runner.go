// Package runner owns the terminal-facing event loop: raw mode, key
// decoding, signal handling and frame rendering. The orchestrator stays
// pure; everything that touches the tty lives here.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	adapter "github.com/aretw0/parley/internal/adapters/term"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"

	"github.com/aretw0/parley"
)

// Runner executes a session against a terminal.
type Runner struct {
	terminal  ports.Terminal
	logger    *slog.Logger
	theme     *tui.Theme
	timeout   time.Duration
	outro     string
	cancelMsg string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTerminal substitutes the terminal implementation. Tests use a
// scripted fake; the default is the real tty adapter.
func WithTerminal(t ports.Terminal) Option {
	return func(r *Runner) { r.terminal = t }
}

// WithLogger sets a structured logger for loop events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithTheme overrides the render theme.
func WithTheme(theme tui.Theme) Option {
	return func(r *Runner) { r.theme = &theme }
}

// WithTimeout aborts the session when no terminal status is reached within d.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithOutro replaces the closing line shown under a completed session.
func WithOutro(s string) Option {
	return func(r *Runner) { r.outro = s }
}

// New creates a runner. The real terminal is opened lazily in Run, so
// constructing a runner in a non-interactive process is fine as long as a
// fake terminal is injected before running.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger:    logging.NewNop(),
		outro:     "Complete!",
		cancelMsg: "Cancelled.",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives the session to a terminal status and returns its result. The
// terminal is put into raw mode for the duration and restored on every exit
// path, including panics. Interrupts and context cancellation are folded
// into the loop as a Ctrl+C keystroke so the session cancels cleanly, with
// prior answers preserved in the result.
func (r *Runner) Run(ctx context.Context, session *parley.Session) (domain.Result, error) {
	term := r.terminal
	if term == nil {
		t, err := adapter.New()
		if err != nil {
			return domain.Result{}, fmt.Errorf("open terminal: %w", err)
		}
		// Injected terminals belong to the caller; only the one opened
		// here gets closed.
		defer t.Close()
		term = t
	}

	sm := NewSignalManager(ctx)
	defer sm.Stop()
	ctx = sm.Context()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	restore, err := term.MakeRaw()
	if err != nil {
		return domain.Result{}, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			r.logger.Warn("terminal restore failed", "err", rerr)
		}
	}()

	rendererOpts := []tui.Option{tui.WithTitle(session.Name())}
	if r.theme != nil {
		rendererOpts = append(rendererOpts, tui.WithTheme(*r.theme))
	}
	renderer := tui.NewRenderer(term, rendererOpts...)

	if err := session.Start(); err != nil {
		return domain.Result{}, err
	}

	for session.Running() {
		done, active := session.Frame()
		if err := renderer.Render(done, active, ""); err != nil {
			return session.Result(), fmt.Errorf("render: %w", err)
		}

		ev, err := term.ReadEvent(ctx)
		if err != nil {
			// Interrupt, deadline and closed input all mean the user is
			// gone; cancel through the normal path.
			if !isShutdown(err) {
				return session.Result(), fmt.Errorf("read input: %w", err)
			}
			r.logger.Debug("input closed, cancelling", "reason", err)
			ev = domain.KeyEvent{Key: domain.KeyCtrlC}
		}

		if _, err := session.Dispatch(ev); err != nil {
			return session.Result(), err
		}
	}

	result := session.Result()
	outro := r.outro
	if result.Status == domain.StatusCancelled {
		outro = r.cancelMsg
	}
	done, _ := session.Frame()
	if err := renderer.Render(done, nil, outro); err != nil {
		return result, fmt.Errorf("render: %w", err)
	}

	r.logger.Debug("session finished", "status", result.Status, "answers", len(result.Answers))
	return result, nil
}

func isShutdown(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
