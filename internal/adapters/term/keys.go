package term

import (
	"bufio"

	"github.com/aretw0/parley/pkg/domain"
)

// decodeEvent reads one keystroke off the raw input stream. In raw mode
// Enter arrives as \r, Backspace as DEL, and special keys as ESC-prefixed
// ANSI sequences. A lone ESC byte with nothing buffered behind it is the
// Esc key itself.
func decodeEvent(r *bufio.Reader) (domain.KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return domain.KeyEvent{}, err
	}

	switch b {
	case 0x03:
		return domain.KeyEvent{Key: domain.KeyCtrlC}, nil
	case '\r', '\n':
		return domain.KeyEvent{Key: domain.KeyEnter}, nil
	case 0x7f, 0x08:
		return domain.KeyEvent{Key: domain.KeyBackspace}, nil
	case '\t':
		return domain.KeyEvent{Key: domain.KeyTab}, nil
	case ' ':
		return domain.KeyEvent{Key: domain.KeySpace}, nil
	case 0x1b:
		return decodeEscape(r)
	}

	if b < 0x20 {
		// Other control bytes are dropped; re-read.
		return decodeEvent(r)
	}

	if b < 0x80 {
		return domain.Rune(rune(b)), nil
	}

	// Multi-byte UTF-8: put the lead byte back and let ReadRune assemble it.
	if err := r.UnreadByte(); err != nil {
		return domain.KeyEvent{}, err
	}
	ru, _, err := r.ReadRune()
	if err != nil {
		return domain.KeyEvent{}, err
	}
	return domain.Rune(ru), nil
}

func decodeEscape(r *bufio.Reader) (domain.KeyEvent, error) {
	// In raw mode a full escape sequence lands in one read, so an empty
	// buffer means the user pressed Esc alone.
	if r.Buffered() == 0 {
		return domain.KeyEvent{Key: domain.KeyEsc}, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return domain.KeyEvent{}, err
	}
	if b != '[' && b != 'O' {
		// Alt+key; the modifier is not part of the key model, deliver the key.
		if err := r.UnreadByte(); err != nil {
			return domain.KeyEvent{}, err
		}
		return decodeEvent(r)
	}

	final, err := r.ReadByte()
	if err != nil {
		return domain.KeyEvent{}, err
	}
	switch final {
	case 'A':
		return domain.KeyEvent{Key: domain.KeyUp}, nil
	case 'B':
		return domain.KeyEvent{Key: domain.KeyDown}, nil
	case 'C':
		return domain.KeyEvent{Key: domain.KeyRight}, nil
	case 'D':
		return domain.KeyEvent{Key: domain.KeyLeft}, nil
	case 'H':
		return domain.KeyEvent{Key: domain.KeyHome}, nil
	case 'F':
		return domain.KeyEvent{Key: domain.KeyEnd}, nil
	case '1', '7':
		return consumeTilde(r, domain.KeyHome)
	case '4', '8':
		return consumeTilde(r, domain.KeyEnd)
	case '3':
		return consumeTilde(r, domain.KeyDelete)
	}

	// Unrecognized sequence; swallow the rest and read the next keystroke.
	// A byte in the CSI final range already terminates the sequence.
	if final < 0x40 || final > 0x7e {
		drainSequence(r)
	}
	return decodeEvent(r)
}

// consumeTilde eats the trailing '~' of vt-style sequences like ESC [ 3 ~.
func consumeTilde(r *bufio.Reader, key domain.Key) (domain.KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return domain.KeyEvent{}, err
	}
	if b != '~' {
		drainSequence(r)
		return decodeEvent(r)
	}
	return domain.KeyEvent{Key: key}, nil
}

// drainSequence discards buffered bytes up to a CSI final byte (0x40-0x7e).
func drainSequence(r *bufio.Reader) {
	for r.Buffered() > 0 {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if b >= 0x40 && b <= 0x7e {
			return
		}
	}
}
