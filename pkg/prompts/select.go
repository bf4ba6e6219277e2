package prompts

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Option is one choice the user can make in a Select.
type Option struct {
	Label       string
	Description string // shown while the option is highlighted
	Hotkey      rune   // optional, matched case-insensitively
	Value       any    // recorded answer; defaults to Label
}

// Choices converts plain labels into options, for the common case.
func Choices(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Label: l}
	}
	return opts
}

// Select asks the user to pick from a list of options, in single or multi
// mode. Arrow keys move the highlight (wrapping at both ends); in single
// mode the highlight is the selection, in multi mode space toggles.
type Select struct {
	title       string
	options     []Option
	multi       bool
	minSelected int

	highlighted int
	selected    map[int]bool

	errMsg string
	done   bool
}

// SelectOption configures a Select prompt.
type SelectOption func(*Select)

// WithMulti switches to checkbox semantics.
func WithMulti() SelectOption {
	return func(p *Select) { p.multi = true }
}

// WithMinSelected requires at least n selections before submit passes.
// Only meaningful in multi mode; single mode always has exactly one.
func WithMinSelected(n int) SelectOption {
	return func(p *Select) { p.minSelected = n }
}

// WithSelected pre-selects an option by label.
func WithSelected(label string) SelectOption {
	return func(p *Select) {
		for i, opt := range p.options {
			if opt.Label == label {
				p.selected[i] = true
				p.highlighted = i
			}
		}
	}
}

// NewSelect creates a selection prompt. Panics on an empty option list:
// that is a definition bug, not a runtime condition.
func NewSelect(title string, options []Option, opts ...SelectOption) *Select {
	if len(options) == 0 {
		panic("prompts: select needs at least one option")
	}
	p := &Select{
		title:    title,
		options:  options,
		selected: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.multi && len(p.selected) == 0 {
		p.selected[0] = true
	}
	return p
}

func (p *Select) move(delta int) {
	n := len(p.options)
	p.highlighted = ((p.highlighted+delta)%n + n) % n
	if !p.multi {
		p.selected = map[int]bool{p.highlighted: true}
	}
}

func (p *Select) pick(idx int) {
	if p.multi {
		if p.selected[idx] {
			delete(p.selected, idx)
		} else {
			p.selected[idx] = true
		}
		p.highlighted = idx
		return
	}
	p.selected = map[int]bool{idx: true}
	p.highlighted = idx
}

func (p *Select) hotkeyIndex(r rune) (int, bool) {
	for i, opt := range p.options {
		if opt.Hotkey != 0 && unicode.ToLower(opt.Hotkey) == unicode.ToLower(r) {
			return i, true
		}
	}
	return 0, false
}

// HandleKey moves the highlight, toggles selections, or submits.
func (p *Select) HandleKey(ev domain.KeyEvent) domain.Action {
	switch {
	case ev.Key == domain.KeyCtrlC:
		return domain.ActionAbort
	case ev.Key == domain.KeyEsc:
		return domain.ActionBack
	case ev.Key == domain.KeyEnter:
		return domain.ActionSubmit
	case ev.Key == domain.KeyUp || ev.Key == domain.KeyLeft:
		p.move(-1)
	case ev.Key == domain.KeyDown || ev.Key == domain.KeyRight:
		p.move(1)
	case ev.Key == domain.KeySpace:
		if p.multi {
			p.pick(p.highlighted)
		}
	case ev.Key == domain.KeyRune:
		if idx, ok := p.hotkeyIndex(ev.Rune); ok {
			p.pick(idx)
		}
	}
	return domain.ActionContinue
}

func (p *Select) value(opt Option) any {
	if opt.Value != nil {
		return opt.Value
	}
	return opt.Label
}

// Submit returns the selected option's value in single mode, or the list of
// selected labels in multi mode.
func (p *Select) Submit(_ domain.Answers) (any, error) {
	if p.multi && len(p.selected) < p.minSelected {
		p.errMsg = fmt.Sprintf("select at least %d option(s)", p.minSelected)
		return nil, fmt.Errorf("%s", p.errMsg)
	}
	p.errMsg = ""
	p.done = true

	if !p.multi {
		return p.value(p.options[p.highlighted]), nil
	}

	picked := make([]string, 0, len(p.selected))
	for i, opt := range p.options {
		if p.selected[i] {
			picked = append(picked, opt.Label)
		}
	}
	return picked, nil
}

// Prefill restores a previous selection by value.
func (p *Select) Prefill(value any) {
	p.selected = make(map[int]bool)
	p.done = false
	p.errMsg = ""

	switch v := value.(type) {
	case []string:
		for _, label := range v {
			for i, opt := range p.options {
				if opt.Label == label {
					p.selected[i] = true
				}
			}
		}
	default:
		// Option values can be any type, slices included, so a plain ==
		// would panic on non-comparable kinds.
		for i, opt := range p.options {
			if reflect.DeepEqual(p.value(opt), value) {
				p.selected[i] = true
				p.highlighted = i
			}
		}
	}
	if !p.multi && len(p.selected) == 0 {
		p.selected[0] = true
		p.highlighted = 0
	}
}

const (
	radioOn  = "●"
	radioOff = "○"
	checkOn  = "◼"
	checkOff = "◻"
)

func (p *Select) markers() (on, off string) {
	if p.multi {
		return checkOn, checkOff
	}
	return radioOn, radioOff
}

// View joins the options into a single selector row.
func (p *Select) View() domain.ViewModel {
	status := domain.PromptActive
	if p.errMsg != "" {
		status = domain.PromptWarning
	}

	on, off := p.markers()
	cells := make([]string, len(p.options))
	for i, opt := range p.options {
		marker := off
		if p.selected[i] {
			marker = on
		}
		cells[i] = fmt.Sprintf("%s %s", marker, opt.Label)
	}

	detail := p.options[p.highlighted].Description

	return domain.ViewModel{
		Title:  p.title,
		Body:   []string{strings.Join(cells, " / ")},
		Detail: detail,
		Err:    p.errMsg,
		Status: status,
		Cursor: domain.CursorPos{Visible: false},
	}
}

// Summary joins the selected labels.
func (p *Select) Summary() string {
	var picked []string
	for i, opt := range p.options {
		if p.selected[i] {
			picked = append(picked, opt.Label)
		}
	}
	return strings.Join(picked, ", ")
}

var _ ports.Prompt = (*Select)(nil)
