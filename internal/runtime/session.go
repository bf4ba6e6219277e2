// Package runtime implements the session orchestrator: the single owner of
// navigation history and the answer mapping. It sequences prompt state
// machines, applies branch predicates between steps, and interprets the
// actions prompts report back.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// entry is one visited step on the navigation stack. The top entry is the
// active step; entries below it each have a recorded answer.
type entry struct {
	stepID string
	prompt ports.Prompt
	title  string
}

// Session drives an ordered, conditionally-branching sequence of prompts.
// It is not safe for concurrent use; the runner's event loop is the only
// writer by construction.
type Session struct {
	steps   []ports.Step
	byID    map[string]int
	answers domain.Answers
	order   []string // answered step IDs in visit order
	done    []domain.StepView
	history []entry
	status  domain.SessionStatus
	started bool
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets a structured logger for orchestrator events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession validates the step definitions and builds an orchestrator.
// Steps without an ID get a random one.
func NewSession(steps []ports.Step, opts ...Option) (*Session, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("session needs at least one step")
	}

	s := &Session{
		steps:   make([]ports.Step, len(steps)),
		byID:    make(map[string]int, len(steps)),
		answers: make(domain.Answers),
		status:  domain.StatusRunning,
		logger:  logging.NewNop(),
	}
	copy(s.steps, steps)

	for i := range s.steps {
		if s.steps[i].Prompt == nil {
			return nil, fmt.Errorf("step %d (%q) has no prompt factory", i, s.steps[i].ID)
		}
		if s.steps[i].ID == "" {
			s.steps[i].ID = uuid.NewString()
		}
		if _, dup := s.byID[s.steps[i].ID]; dup {
			return nil, fmt.Errorf("duplicate step id %q", s.steps[i].ID)
		}
		s.byID[s.steps[i].ID] = i
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start selects the first runnable step (evaluating When predicates against
// an empty answer set) and activates its prompt. A session where no step is
// runnable completes immediately.
func (s *Session) Start() error {
	if s.started {
		return fmt.Errorf("session already started")
	}
	s.started = true

	first := s.nextInOrder(-1)
	if first == "" {
		s.status = domain.StatusCompleted
		s.logger.Debug("no runnable step, session complete")
		return nil
	}

	s.push(first)
	return nil
}

// Running reports whether the session still wants input.
func (s *Session) Running() bool {
	return s.started && s.status == domain.StatusRunning
}

// Status returns the session status.
func (s *Session) Status() domain.SessionStatus {
	return s.status
}

// ActiveID returns the id of the active step, or "".
func (s *Session) ActiveID() string {
	if len(s.history) == 0 {
		return ""
	}
	return s.history[len(s.history)-1].stepID
}

// Dispatch forwards one key event to the active prompt and interprets the
// action it reports. Validation failures stay inside the prompt; the only
// error Dispatch returns is a branch predicate naming an unknown step,
// which is a definition bug and fatal.
func (s *Session) Dispatch(ev domain.KeyEvent) (domain.Action, error) {
	if !s.started {
		return domain.ActionContinue, domain.ErrSessionNotStarted
	}
	if s.status != domain.StatusRunning || len(s.history) == 0 {
		return domain.ActionContinue, nil
	}

	active := s.history[len(s.history)-1]
	act := active.prompt.HandleKey(ev)

	switch act {
	case domain.ActionSubmit:
		if err := s.submit(active); err != nil {
			return act, err
		}
	case domain.ActionBack:
		s.back()
	case domain.ActionAbort:
		s.logger.Debug("session aborted", "step", active.stepID)
		s.status = domain.StatusCancelled
	}
	return act, nil
}

// submit validates the active prompt and, on success, records the answer
// and advances. On validation failure nothing moves: history and answers
// are unchanged and the prompt keeps its buffer and error message.
func (s *Session) submit(active entry) error {
	value, err := active.prompt.Submit(s.answers.Clone())
	if err != nil {
		s.logger.Debug("validation rejected", "step", active.stepID, "err", err)
		return nil
	}

	s.answers[active.stepID] = value
	// A branch predicate may route forward onto an already-answered step;
	// the new record replaces the old one so order/done mirror the answer
	// map one-to-one.
	if idx := indexOf(s.order, active.stepID); idx >= 0 {
		s.order = append(s.order[:idx], s.order[idx+1:]...)
		s.done = append(s.done[:idx], s.done[idx+1:]...)
	}
	s.order = append(s.order, active.stepID)
	vm := active.prompt.View()
	s.done = append(s.done, domain.StepView{
		ID:      active.stepID,
		Title:   vm.Title,
		Summary: active.prompt.Summary(),
		Status:  domain.PromptSuccess,
	})

	next, err := s.resolveNext(active.stepID)
	if err != nil {
		return err
	}
	if next == "" {
		s.status = domain.StatusCompleted
		s.logger.Debug("session complete", "steps", len(s.order))
		return nil
	}

	s.push(next)
	return nil
}

// back pops the active step and revisits the previous one, pre-filled with
// its recorded answer. That answer leaves the mapping until resubmitted, so
// branch predicates never see a half-edited value. At the first step, back
// is a silent no-op.
func (s *Session) back() {
	if len(s.history) <= 1 {
		return
	}

	s.history = s.history[:len(s.history)-1]
	prior := &s.history[len(s.history)-1]

	prev, had := s.answers[prior.stepID]
	delete(s.answers, prior.stepID)
	if n := len(s.order); n > 0 && s.order[n-1] == prior.stepID {
		s.order = s.order[:n-1]
		s.done = s.done[:n-1]
	}

	// Fresh instance: transient state of the old one is gone by design.
	prior.prompt = s.steps[s.byID[prior.stepID]].Prompt()
	if had {
		prior.prompt.Prefill(prev)
	}
	s.logger.Debug("revisiting step", "step", prior.stepID)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (s *Session) push(stepID string) {
	step := s.steps[s.byID[stepID]]
	prompt := step.Prompt()
	vm := prompt.View()
	s.history = append(s.history, entry{stepID: stepID, prompt: prompt, title: vm.Title})
	s.logger.Debug("step activated", "step", stepID)
}

// resolveNext applies the answered step's branch predicate. Predicates are
// evaluated fresh on every completion, never cached, so a changed earlier
// answer can redirect the forward path. An empty return means the session
// is complete.
func (s *Session) resolveNext(fromID string) (string, error) {
	from := s.byID[fromID]
	step := s.steps[from]

	if step.Next != nil {
		id, ok := step.Next(s.answers.Clone())
		if !ok {
			return "", nil
		}
		if id != "" {
			if _, exists := s.byID[id]; !exists {
				return "", fmt.Errorf("step %q branched to %q: %w", fromID, id, domain.ErrStepNotFound)
			}
			return id, nil
		}
		// Fall through to declared order.
	}

	return s.nextInOrder(from), nil
}

// nextInOrder scans the declared sequence after index from for the first
// step whose When predicate accepts the current answers.
func (s *Session) nextInOrder(from int) string {
	for i := from + 1; i < len(s.steps); i++ {
		if s.steps[i].When == nil || s.steps[i].When(s.answers.Clone()) {
			return s.steps[i].ID
		}
		s.logger.Debug("step skipped", "step", s.steps[i].ID)
	}
	return ""
}

// Frame exposes what the renderer needs: the completed step summaries in
// visit order and the active prompt's view model (nil once the session has
// reached a terminal status).
func (s *Session) Frame() ([]domain.StepView, *domain.ViewModel) {
	completed := make([]domain.StepView, len(s.done))
	copy(completed, s.done)

	if s.status != domain.StatusRunning || len(s.history) == 0 {
		return completed, nil
	}
	vm := s.history[len(s.history)-1].prompt.View()
	return completed, &vm
}

// Result finalizes the session record. On a cancelled session the answers
// recorded before the abort remain readable; the caller decides whether to
// keep them.
func (s *Session) Result() domain.Result {
	order := make([]string, len(s.order))
	copy(order, s.order)
	return domain.Result{
		Answers: s.answers.Clone(),
		Order:   order,
		Status:  s.status,
	}
}
