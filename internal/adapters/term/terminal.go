// Package term adapts a real tty to the ports.Terminal contract using
// golang.org/x/term for mode switching and a background pump goroutine for
// reads, so the event loop can select between keystrokes and cancellation.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Terminal reads key events from a raw tty and writes frames to it.
type Terminal struct {
	in     *os.File
	out    *os.File
	output *termenv.Output
	reader *bufio.Reader

	events    chan eventResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type eventResult struct {
	ev  domain.KeyEvent
	err error
}

// New opens the process tty. It fails with domain.ErrNotATerminal when
// stdin is not interactive (piped input, CI), so callers can fall back or
// bail out with a clear message.
func New() (*Terminal, error) {
	in := os.Stdin
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("stdin (fd %d): %w", in.Fd(), domain.ErrNotATerminal)
	}
	out := os.Stdout
	return &Terminal{
		in:     in,
		out:    out,
		output: termenv.NewOutput(out),
		reader: bufio.NewReader(in),
		done:   make(chan struct{}),
	}, nil
}

// MakeRaw switches the tty into raw mode, hides the hardware cursor, and
// returns the restore function. Restore is safe to call once from a defer.
func (t *Terminal) MakeRaw() (func() error, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.output.HideCursor()
	return func() error {
		t.output.ShowCursor()
		if err := term.Restore(fd, state); err != nil {
			return fmt.Errorf("restore terminal mode: %w", err)
		}
		return nil
	}, nil
}

func (t *Terminal) initPump() {
	t.startOnce.Do(func() {
		t.events = make(chan eventResult)
		go t.pump()
	})
}

// pump decodes keystrokes off the tty and feeds them to ReadEvent. It runs
// until the input stream errors or Close is called; a read abandoned by a
// cancelled ReadEvent stays buffered in the channel for the next call.
func (t *Terminal) pump() {
	for {
		ev, err := decodeEvent(t.reader)
		select {
		case t.events <- eventResult{ev: ev, err: err}:
		case <-t.done:
			return
		}
		if err == io.EOF {
			close(t.events)
			return
		}
	}
}

func (t *Terminal) ReadEvent(ctx context.Context) (domain.KeyEvent, error) {
	t.initPump()

	select {
	case <-ctx.Done():
		return domain.KeyEvent{}, ctx.Err()
	case <-t.done:
		return domain.KeyEvent{}, io.EOF
	case res, ok := <-t.events:
		if !ok {
			return domain.KeyEvent{}, io.EOF
		}
		return res.ev, res.err
	}
}

// Close stops the read pump and makes further ReadEvent calls report EOF.
// A pump already blocked on the tty cannot be interrupted portably; it
// exits on the next keystroke without delivering it. Safe to call twice.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() { close(t.done) })
	return nil
}

func (t *Terminal) Write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

func (t *Terminal) Size() (int, int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

var _ ports.Terminal = (*Terminal)(nil)
