package term

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/pkg/domain"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestDecodeNamedKeys(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  domain.Key
	}{
		{"ctrl+c", "\x03", domain.KeyCtrlC},
		{"enter cr", "\r", domain.KeyEnter},
		{"enter lf", "\n", domain.KeyEnter},
		{"backspace del", "\x7f", domain.KeyBackspace},
		{"backspace bs", "\x08", domain.KeyBackspace},
		{"tab", "\t", domain.KeyTab},
		{"space", " ", domain.KeySpace},
		{"up", "\x1b[A", domain.KeyUp},
		{"down", "\x1b[B", domain.KeyDown},
		{"right", "\x1b[C", domain.KeyRight},
		{"left", "\x1b[D", domain.KeyLeft},
		{"home", "\x1b[H", domain.KeyHome},
		{"end", "\x1b[F", domain.KeyEnd},
		{"home vt", "\x1b[1~", domain.KeyHome},
		{"end vt", "\x1b[4~", domain.KeyEnd},
		{"delete", "\x1b[3~", domain.KeyDelete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := decodeEvent(reader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ev.Key)
		})
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	// Nothing buffered behind the ESC byte means the Esc key itself.
	ev, err := decodeEvent(reader("\x1b"))
	require.NoError(t, err)
	assert.Equal(t, domain.KeyEsc, ev.Key)
}

func TestDecodePrintableRunes(t *testing.T) {
	r := reader("aç日")
	for _, want := range []rune{'a', 'ç', '日'} {
		ev, err := decodeEvent(r)
		require.NoError(t, err)
		assert.Equal(t, domain.KeyRune, ev.Key)
		assert.Equal(t, want, ev.Rune)
	}
}

func TestDecodeSkipsUnknownSequences(t *testing.T) {
	// Shift+Tab (ESC [ Z) is not in the key model; the next keystroke
	// should come through untouched.
	r := reader("\x1b[Zx")
	ev, err := decodeEvent(r)
	require.NoError(t, err)
	assert.Equal(t, domain.Rune('x'), ev)
}

func TestDecodeDropsControlBytes(t *testing.T) {
	r := reader("\x01y")
	ev, err := decodeEvent(r)
	require.NoError(t, err)
	assert.Equal(t, domain.Rune('y'), ev)
}

func TestDecodeEOF(t *testing.T) {
	_, err := decodeEvent(reader(""))
	assert.ErrorIs(t, err, io.EOF)
}
