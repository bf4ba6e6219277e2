package prompts

import (
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Confirm asks a Yes/No question, recorded as a bool. It is a thin shell
// over Select with Y/N hotkeys.
type Confirm struct {
	inner *Select

	// stopOnNo turns a "No" submit into a session abort, for gate questions
	// like "continue with the install?".
	stopOnNo bool
}

// ConfirmOption configures a Confirm prompt.
type ConfirmOption func(*Confirm)

// WithConfirmDefault pre-selects the answer. The zero default is No.
func WithConfirmDefault(yes bool) ConfirmOption {
	return func(p *Confirm) {
		if yes {
			p.inner.pick(0)
		} else {
			p.inner.pick(1)
		}
	}
}

// WithStopOnNo cancels the whole session when the user answers No.
func WithStopOnNo() ConfirmOption {
	return func(p *Confirm) { p.stopOnNo = true }
}

// NewConfirm creates a Yes/No prompt.
func NewConfirm(title string, opts ...ConfirmOption) *Confirm {
	inner := NewSelect(title, []Option{
		{Label: "Yes", Hotkey: 'y', Value: true},
		{Label: "No", Hotkey: 'n', Value: false},
	})
	inner.pick(1) // default No, like the cautious end of a destructive action
	p := &Confirm{inner: inner}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Confirm) HandleKey(ev domain.KeyEvent) domain.Action {
	act := p.inner.HandleKey(ev)
	if act == domain.ActionSubmit && p.stopOnNo && p.inner.selected[1] {
		return domain.ActionAbort
	}
	return act
}

func (p *Confirm) Submit(prior domain.Answers) (any, error) {
	return p.inner.Submit(prior)
}

func (p *Confirm) View() domain.ViewModel { return p.inner.View() }

func (p *Confirm) Summary() string { return p.inner.Summary() }

func (p *Confirm) Prefill(value any) { p.inner.Prefill(value) }

var _ ports.Prompt = (*Confirm)(nil)
