package ports

import "github.com/aretw0/parley/pkg/domain"

// Prompt is the per-step state machine. One instance exists for the
// currently active step; it owns its transient input buffer, cursor and
// last validation error. Once accepted, the instance is discarded and only
// the answer (plus a rendered summary) is retained.
type Prompt interface {
	// HandleKey consumes one key event, mutates internal state, and reports
	// what the orchestrator should do next. Unsupported keys are ignored and
	// reported as ActionContinue; HandleKey never fails.
	HandleKey(ev domain.KeyEvent) domain.Action

	// Submit runs the prompt's validation over the current buffer.
	// On success it returns the normalized, typed answer value. On failure
	// it returns the validation error, keeps the buffer intact, and attaches
	// the message to the view so the user can correct in place.
	// prior is a read-only copy of previously recorded answers.
	Submit(prior domain.Answers) (any, error)

	// View describes the prompt's current appearance. It is a pure function
	// of prompt state with no side effects.
	View() domain.ViewModel

	// Summary is the one-line rendition of the accepted answer, shown in the
	// frame after the step completes.
	Summary() string

	// Prefill seeds the prompt with a previously recorded answer, used when
	// back-navigation revisits a step for edit-in-place.
	Prefill(value any)
}

// PromptFactory builds a fresh prompt instance for a step. The orchestrator
// calls it on first visit and again on every revisit, so factories must not
// share mutable state between instances.
type PromptFactory func() Prompt
