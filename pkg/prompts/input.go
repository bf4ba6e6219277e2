package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/validate"
)

// Input asks the user to type a free-form response.
type Input struct {
	title       string
	detail      string
	secret      bool
	placeholder string

	buf    []rune
	cursor int

	chain  validate.Chain
	coerce func(string) (any, error)

	errMsg   string
	accepted any
	done     bool
}

// InputOption configures an Input prompt.
type InputOption func(*Input)

// WithDetail adds dim helper text under the buffer.
func WithDetail(detail string) InputOption {
	return func(p *Input) { p.detail = detail }
}

// WithSecret masks the echoed buffer and reports only its length.
func WithSecret() InputOption {
	return func(p *Input) { p.secret = true }
}

// WithDefault seeds the buffer, letting the user accept or edit it.
func WithDefault(value string) InputOption {
	return func(p *Input) { p.setBuffer(value) }
}

// WithPlaceholder shows ghost text while the buffer is empty.
func WithPlaceholder(text string) InputOption {
	return func(p *Input) { p.placeholder = text }
}

// WithValidators appends to the validation chain.
func WithValidators(fns ...validate.Func) InputOption {
	return func(p *Input) { p.chain = append(p.chain, fns...) }
}

// WithCoerce converts the validated buffer into the typed answer value.
// The default keeps the trimmed string.
func WithCoerce(fn func(string) (any, error)) InputOption {
	return func(p *Input) { p.coerce = fn }
}

// IntValue is a coercer that stores the answer as an int. Pair it with
// validate.Int (or AtLeast/AtMost) so coercion cannot fail unseen.
func IntValue(s string) (any, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// NewInput creates a text entry prompt.
func NewInput(title string, opts ...InputOption) *Input {
	p := &Input{title: title}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Input) setBuffer(value string) {
	p.buf = []rune(value)
	p.cursor = len(p.buf)
}

// HandleKey mutates the buffer and cursor. Unsupported keys are ignored.
func (p *Input) HandleKey(ev domain.KeyEvent) domain.Action {
	switch {
	case ev.Key == domain.KeyCtrlC:
		return domain.ActionAbort
	case ev.Key == domain.KeyEsc:
		return domain.ActionBack
	case ev.Key == domain.KeyEnter:
		return domain.ActionSubmit
	case ev.Key == domain.KeyBackspace:
		if p.cursor > 0 {
			p.buf = append(p.buf[:p.cursor-1], p.buf[p.cursor:]...)
			p.cursor--
		}
	case ev.Key == domain.KeyDelete:
		if p.cursor < len(p.buf) {
			p.buf = append(p.buf[:p.cursor], p.buf[p.cursor+1:]...)
		}
	case ev.Key == domain.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case ev.Key == domain.KeyRight:
		if p.cursor < len(p.buf) {
			p.cursor++
		}
	case ev.Key == domain.KeyHome:
		p.cursor = 0
	case ev.Key == domain.KeyEnd:
		p.cursor = len(p.buf)
	case ev.Printable():
		p.buf = append(p.buf[:p.cursor], append([]rune{ev.Char()}, p.buf[p.cursor:]...)...)
		p.cursor++
	}
	return domain.ActionContinue
}

// Submit validates the buffer. On failure the buffer is preserved so the
// user can correct in place; the error is attached for rendering.
// Validators, coercion, and the recorded answer all see the same
// trimmed string.
func (p *Input) Submit(prior domain.Answers) (any, error) {
	raw := strings.TrimSpace(string(p.buf))

	if err := p.chain.Run(raw, prior); err != nil {
		p.errMsg = err.Error()
		return nil, err
	}

	value := any(raw)
	if p.coerce != nil {
		coerced, err := p.coerce(raw)
		if err != nil {
			p.errMsg = err.Error()
			return nil, err
		}
		value = coerced
	}

	p.errMsg = ""
	p.accepted = value
	p.done = true
	return value, nil
}

// Prefill seeds the buffer with a previously recorded answer.
func (p *Input) Prefill(value any) {
	p.setBuffer(fmt.Sprintf("%v", value))
	p.errMsg = ""
	p.done = false
}

func (p *Input) echo() string {
	if p.secret {
		return strings.Repeat("•", len(p.buf))
	}
	return string(p.buf)
}

// View renders the prompt state. Pure; safe to call repeatedly.
func (p *Input) View() domain.ViewModel {
	status := domain.PromptActive
	if p.errMsg != "" {
		status = domain.PromptWarning
	}

	body := p.echo()
	cursor := domain.CursorPos{Line: 0, Col: p.cursor, Visible: true}
	if len(p.buf) == 0 && p.placeholder != "" {
		body = p.placeholder
		cursor.Col = 0
	}

	detail := p.detail
	if p.secret {
		detail = fmt.Sprintf("..currently %d characters", len(p.buf))
	}

	return domain.ViewModel{
		Title:  p.title,
		Body:   []string{body},
		Detail: detail,
		Err:    p.errMsg,
		Status: status,
		Cursor: cursor,
	}
}

// Summary shows the accepted value, masked for secrets.
func (p *Input) Summary() string {
	if p.secret {
		return strings.Repeat("•", len(p.buf))
	}
	return fmt.Sprintf("%v", p.accepted)
}

var _ ports.Prompt = (*Input)(nil)
