package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/parley/internal/testutils"
	"github.com/aretw0/parley/pkg/domain"
)

// Styling degrades to plain text without a tty, so frames can be compared
// literally.

func TestRendererFirstFrame(t *testing.T) {
	term := testutils.NewScriptTerminal()
	r := NewRenderer(term, WithTitle("Signup"))

	err := r.Render(
		[]domain.StepView{
			{ID: "name", Title: "What's your name?", Summary: "Ana", Status: domain.PromptSuccess},
		},
		&domain.ViewModel{
			Title:  "How old are you?",
			Body:   []string{"16"},
			Status: domain.PromptActive,
			Cursor: domain.CursorPos{Line: 0, Col: 2, Visible: true},
		},
		"",
	)
	require.NoError(t, err)

	out := term.Output()
	assert.Contains(t, out, "┌ Signup")
	assert.Contains(t, out, "◇ What's your name?")
	assert.Contains(t, out, "│ Ana")
	assert.Contains(t, out, "◆ How old are you?")
	assert.Contains(t, out, "│ 16")
	assert.True(t, strings.HasSuffix(out, "└\r\n"))
}

func TestRendererOutroFrame(t *testing.T) {
	term := testutils.NewScriptTerminal()
	r := NewRenderer(term, WithTitle("Signup"))

	require.NoError(t, r.Render(nil, nil, "Complete!"))
	assert.Contains(t, term.Output(), "└ Complete!")
}

func TestRendererRepaintsOnlyChangedSuffix(t *testing.T) {
	term := testutils.NewScriptTerminal()
	r := NewRenderer(term, WithTitle("Signup"))

	active := domain.ViewModel{
		Title:  "What's your name?",
		Body:   []string{"An"},
		Status: domain.PromptActive,
		Cursor: domain.CursorPos{Line: 0, Col: 2, Visible: true},
	}
	require.NoError(t, r.Render(nil, &active, ""))

	active.Body = []string{"Ana"}
	active.Cursor.Col = 3
	require.NoError(t, r.Render(nil, &active, ""))

	writes := term.Writes()
	require.Len(t, writes, 2)

	// Second write climbs back to the body line, erases below, and
	// rewrites only from there; the title line is not repainted.
	second := writes[1]
	assert.Contains(t, second, "\x1b[")
	assert.Contains(t, second, "\x1b[0J")
	assert.NotContains(t, second, "What's your name?")
	assert.Contains(t, second, "Ana")
}

func TestRendererSkipsIdenticalFrame(t *testing.T) {
	term := testutils.NewScriptTerminal()
	r := NewRenderer(term, WithTitle("Signup"))

	active := domain.ViewModel{Title: "Ready?", Status: domain.PromptActive}
	require.NoError(t, r.Render(nil, &active, ""))
	require.NoError(t, r.Render(nil, &active, ""))

	assert.Len(t, term.Writes(), 1)
}

func TestRendererErrorLineReplacesDetail(t *testing.T) {
	term := testutils.NewScriptTerminal()
	r := NewRenderer(term, WithTitle("Signup"))

	active := domain.ViewModel{
		Title:  "How old are you?",
		Body:   []string{"-5"},
		Detail: "Enter a number",
		Err:    "must be at least 0",
		Status: domain.PromptWarning,
	}
	require.NoError(t, r.Render(nil, &active, ""))

	out := term.Output()
	assert.Contains(t, out, "» must be at least 0")
	assert.NotContains(t, out, "Enter a number")
	assert.Contains(t, out, "◈ How old are you?")
}

func TestRendererTruncatesLongBodyLines(t *testing.T) {
	term := testutils.NewScriptTerminal()
	term.Width = 20
	r := NewRenderer(term, WithTitle("T"))

	active := domain.ViewModel{
		Title:  "Q",
		Body:   []string{strings.Repeat("x", 40)},
		Status: domain.PromptActive,
	}
	require.NoError(t, r.Render(nil, &active, ""))
	assert.Contains(t, term.Output(), "…")
}

func TestRendererCursorPastEndAppendsCell(t *testing.T) {
	r := NewRenderer(testutils.NewScriptTerminal())
	got := r.withCursor("ab", 2, 80)
	assert.Equal(t, "ab ", got)
}
