package ports

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
)

// Terminal abstracts the raw keyboard and screen so the engine can be driven
// headlessly in tests. The real implementation lives in
// internal/adapters/term and is backed by golang.org/x/term.
type Terminal interface {
	// MakeRaw switches the terminal into raw mode and returns the function
	// that restores the previous mode. Callers must ensure restore runs on
	// every exit path, including panics.
	MakeRaw() (restore func() error, err error)

	// ReadEvent blocks until the next key event is available or ctx is done.
	// Cancellation (interrupt, timeout) surfaces as ctx.Err(); the runner
	// translates it into an abort for the active prompt.
	ReadEvent(ctx context.Context) (domain.KeyEvent, error)

	// Write emits an already-composed chunk of screen output.
	Write(s string) error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int)
}
