package prompts

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Note shows an informative message and waits for acknowledgement. The text
// is Markdown, rendered through glamour; if rendering fails the raw text is
// shown instead so a bad style never blocks a session.
type Note struct {
	title string
	body  []string
	done  bool
}

// NoteOption configures a Note prompt.
type NoteOption func(*Note)

// NewNote creates an informational step. Enter or space acknowledges it.
func NewNote(title, markdown string, opts ...NoteOption) *Note {
	p := &Note{title: title, body: renderMarkdown(markdown)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func renderMarkdown(markdown string) []string {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	out := markdown
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
		if rendered, rerr := r.Render(markdown); rerr == nil {
			out = rendered
		}
	}

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func (p *Note) HandleKey(ev domain.KeyEvent) domain.Action {
	switch ev.Key {
	case domain.KeyCtrlC:
		return domain.ActionAbort
	case domain.KeyEsc:
		return domain.ActionBack
	case domain.KeyEnter, domain.KeySpace:
		return domain.ActionSubmit
	}
	return domain.ActionContinue
}

// Submit records a plain acknowledgement.
func (p *Note) Submit(_ domain.Answers) (any, error) {
	p.done = true
	return true, nil
}

func (p *Note) View() domain.ViewModel {
	return domain.ViewModel{
		Title:  p.title,
		Body:   p.body,
		Status: domain.PromptActive,
		Cursor: domain.CursorPos{Visible: false},
	}
}

func (p *Note) Summary() string { return "" }

func (p *Note) Prefill(any) {}

var _ ports.Prompt = (*Note)(nil)
