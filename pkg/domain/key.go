package domain

// Key identifies a decoded keyboard key. Printable characters arrive as
// KeyRune with the Rune field populated; everything else is a named key.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyTab
	KeySpace
	KeyEsc
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyEsc:       "esc",
	KeyCtrlC:     "ctrl+c",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyEvent is a single decoded keystroke delivered by the terminal adapter.
type KeyEvent struct {
	Key  Key
	Rune rune // set only when Key == KeyRune
}

// Rune is a convenience constructor for printable key events.
func Rune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Printable reports whether the event carries a character that belongs in a
// text buffer. The space key is printable even though it has its own Key,
// because select prompts bind it separately.
func (e KeyEvent) Printable() bool {
	if e.Key == KeySpace {
		return true
	}
	return e.Key == KeyRune && e.Rune >= ' '
}

// Char returns the character for a printable event, or 0.
func (e KeyEvent) Char() rune {
	if e.Key == KeySpace {
		return ' '
	}
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}
