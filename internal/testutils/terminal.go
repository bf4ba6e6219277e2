// Package testutils provides a scripted in-memory terminal so sessions can
// be driven headlessly in tests, without a tty or raw mode.
package testutils

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// ScriptTerminal implements ports.Terminal over a pre-recorded key script.
// Reads return the scripted events in order and io.EOF afterwards; writes
// are captured for assertions.
type ScriptTerminal struct {
	mu     sync.Mutex
	events []domain.KeyEvent
	pos    int
	writes []string

	Width  int
	Height int

	// RawDepth counts MakeRaw calls minus restore calls, so tests can
	// assert the raw-mode scope was balanced on every exit path.
	RawDepth  int
	RawCalls  int
	FailRaw   error // returned by MakeRaw when set
	FailWrite error // returned by Write when set
}

// NewScriptTerminal creates a fake terminal with an 80x24 screen.
func NewScriptTerminal() *ScriptTerminal {
	return &ScriptTerminal{Width: 80, Height: 24}
}

// Type appends one printable key event per rune.
func (t *ScriptTerminal) Type(s string) *ScriptTerminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range s {
		t.events = append(t.events, domain.Rune(r))
	}
	return t
}

// Press appends named key events.
func (t *ScriptTerminal) Press(keys ...domain.Key) *ScriptTerminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, k := range keys {
		t.events = append(t.events, domain.KeyEvent{Key: k})
	}
	return t
}

// Enter is shorthand for Press(domain.KeyEnter).
func (t *ScriptTerminal) Enter() *ScriptTerminal {
	return t.Press(domain.KeyEnter)
}

// Line types s and presses enter.
func (t *ScriptTerminal) Line(s string) *ScriptTerminal {
	return t.Type(s).Enter()
}

func (t *ScriptTerminal) MakeRaw() (func() error, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.FailRaw != nil {
		return nil, t.FailRaw
	}
	t.RawCalls++
	t.RawDepth++
	return func() error {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.RawDepth--
		return nil
	}, nil
}

func (t *ScriptTerminal) ReadEvent(ctx context.Context) (domain.KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return domain.KeyEvent{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pos >= len(t.events) {
		return domain.KeyEvent{}, io.EOF
	}
	ev := t.events[t.pos]
	t.pos++
	return ev, nil
}

func (t *ScriptTerminal) Write(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.FailWrite != nil {
		return t.FailWrite
	}
	t.writes = append(t.writes, s)
	return nil
}

func (t *ScriptTerminal) Size() (int, int) { return t.Width, t.Height }

// Output returns everything written so far.
func (t *ScriptTerminal) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.writes, "")
}

// Writes returns the individual write calls.
func (t *ScriptTerminal) Writes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.writes))
	copy(out, t.writes)
	return out
}

var _ ports.Terminal = (*ScriptTerminal)(nil)
