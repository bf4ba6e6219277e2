package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Renderer converts session state into terminal output. It keeps the last
// frame it drew and repaints only from the first changed line down, so a
// keystroke that edits one buffer character never repaints the whole menu.
type Renderer struct {
	term  ports.Terminal
	theme Theme
	title string

	last    []string
	started bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme overrides the default theme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) { r.theme = theme }
}

// WithTitle sets the session title shown on the opening rail line.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// NewRenderer creates a renderer writing through the given terminal.
func NewRenderer(term ports.Terminal, opts ...Option) *Renderer {
	r := &Renderer{term: term, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the session frame: completed step summaries, then the
// active prompt (nil once the session is over). outro is the closing rail
// line for terminal frames.
func (r *Renderer) Render(done []domain.StepView, active *domain.ViewModel, outro string) error {
	frame := r.buildFrame(done, active, outro)
	return r.flush(frame)
}

func (r *Renderer) contentWidth() int {
	w, _ := r.term.Size()
	if w <= 0 {
		w = 80
	}
	// Two cells for the marker column.
	if w > 2 {
		w -= 2
	}
	return w
}

// buildFrame composes the full styled frame as a list of lines.
func (r *Renderer) buildFrame(done []domain.StepView, active *domain.ViewModel, outro string) []string {
	width := r.contentWidth()
	rail := r.theme.Rail.Render(RailBar)

	lines := []string{r.theme.Rail.Render(RailBeg) + " " + r.theme.Title.Render(r.title)}
	lines = append(lines, rail)

	for _, step := range done {
		marker := r.theme.Style(step.Status).Render(r.theme.Marker(step.Status))
		lines = append(lines, marker+" "+truncate(step.Title, width))
		if step.Summary != "" {
			lines = append(lines, rail+" "+r.theme.Summary.Render(truncate(step.Summary, width)))
		}
		lines = append(lines, rail)
	}

	if active != nil {
		lines = append(lines, r.activeLines(*active, width)...)
	}

	if outro != "" {
		lines = append(lines, r.theme.Rail.Render(RailEnd)+" "+r.theme.Title.Render(outro))
	} else {
		lines = append(lines, r.theme.Rail.Render(RailEnd))
	}
	return lines
}

func (r *Renderer) activeLines(vm domain.ViewModel, width int) []string {
	rail := r.theme.Rail.Render(RailBar)
	style := r.theme.Style(vm.Status)
	marker := style.Render(r.theme.Marker(vm.Status))

	var lines []string
	for i, t := range strings.Split(wordwrap.String(vm.Title, width), "\n") {
		if i == 0 {
			lines = append(lines, marker+" "+r.theme.Title.Render(t))
		} else {
			lines = append(lines, rail+" "+r.theme.Title.Render(t))
		}
	}

	for i, body := range vm.Body {
		line := truncate(body, width)
		if vm.Cursor.Visible && vm.Cursor.Line == i {
			line = r.withCursor(body, vm.Cursor.Col, width)
		}
		lines = append(lines, rail+" "+line)
	}

	if vm.Err != "" {
		lines = append(lines, rail+" "+r.theme.Err.Render("» "+truncate(vm.Err, width)))
	} else if vm.Detail != "" {
		lines = append(lines, rail+" "+r.theme.Detail.Render(truncate(vm.Detail, width)))
	}
	return lines
}

// withCursor renders a body line with a reverse-video cell at the cursor's
// rune index. A cursor past the end of the buffer becomes a highlighted
// trailing space.
func (r *Renderer) withCursor(line string, col, width int) string {
	runes := []rune(truncate(line, width))
	if col >= len(runes) {
		return string(runes) + r.theme.Cursor.Render(" ")
	}
	if col < 0 {
		col = 0
	}
	return string(runes[:col]) + r.theme.Cursor.Render(string(runes[col])) + string(runes[col+1:])
}

// flush writes the frame, repainting only from the first changed line.
func (r *Renderer) flush(frame []string) error {
	if !r.started {
		r.started = true
		r.last = frame
		return r.term.Write(joinCRLF(frame))
	}

	changed := firstDiff(r.last, frame)
	if changed == len(r.last) && changed == len(frame) {
		return nil // identical frame
	}

	var out strings.Builder
	// The cursor rests on the line after the previous frame; climb back up
	// to the first changed line and erase everything below it.
	if up := len(r.last) - changed; up > 0 {
		fmt.Fprintf(&out, "\x1b[%dA", up)
	}
	out.WriteString("\r\x1b[0J")
	out.WriteString(joinCRLF(frame[changed:]))

	r.last = frame
	return r.term.Write(out.String())
}

// firstDiff returns the index of the first line where the frames disagree.
func firstDiff(prev, next []string) int {
	n := len(prev)
	if len(next) < n {
		n = len(next)
	}
	for i := 0; i < n; i++ {
		if prev[i] != next[i] {
			return i
		}
	}
	return n
}

func joinCRLF(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
